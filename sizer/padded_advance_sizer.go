package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Sizer = (*PaddedAdvanceSizer)(nil)

// Like [DefaultSizer], but adds a fixed padding to every glyph advance.
// Intended for glyphs that have actually become wider, like the ones
// produced by mask.FauxBoldRasterizer.
type PaddedAdvanceSizer struct {
	DefaultSizer
	padding fixed.Int26_6
}

// Sets the horizontal padding added to each advance.
func (self *PaddedAdvanceSizer) SetPadding(value fixed.Int26_6) {
	self.padding = value
}

// Returns the horizontal padding added to each advance.
func (self *PaddedAdvanceSizer) GetPadding() fixed.Int26_6 {
	return self.padding
}

// Satisfies the [Sizer] interface.
func (self *PaddedAdvanceSizer) GlyphAdvance(font *Font, buffer *Buffer, size fixed.Int26_6, g GlyphIndex) fixed.Int26_6 {
	return self.DefaultSizer.GlyphAdvance(font, buffer, size, g) + self.padding
}
