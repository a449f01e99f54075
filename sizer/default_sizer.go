package sizer

import "strconv"

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

// Metrics and advances are hinted to whole pixels, which keeps small
// UI text crisp.
const hinting = font.HintingFull

var _ Sizer = (*DefaultSizer)(nil)

// The default [Sizer]. Metrics are cached on NotifyChange(), advances
// and kerning are queried from the font each time.
type DefaultSizer struct {
	cachedAscent  fixed.Int26_6
	cachedDescent fixed.Int26_6
	cachedLineHeight fixed.Int26_6
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Ascent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedAscent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Descent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedDescent
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) LineHeight(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6 {
	return self.cachedLineHeight
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) GlyphAdvance(sfntFont *Font, buffer *Buffer, size fixed.Int26_6, g GlyphIndex) fixed.Int26_6 {
	advance, err := sfntFont.GlyphAdvance(buffer, g, size, hinting)
	if err == nil { return advance }
	panic("font.GlyphAdvance(index = " + strconv.Itoa(int(g)) + ") error: " + err.Error())
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) Kern(sfntFont *Font, buffer *Buffer, size fixed.Int26_6, g1, g2 GlyphIndex) fixed.Int26_6 {
	kern, err := sfntFont.Kern(buffer, g1, g2, size, hinting)
	if err == nil { return kern }
	if err == ErrNotFound { return 0 }
	panic("font.Kern(" + strconv.Itoa(int(g1)) + ", " + strconv.Itoa(int(g2)) + ") error: " + err.Error())
}

// Satisfies the [Sizer] interface.
func (self *DefaultSizer) NotifyChange(sfntFont *Font, buffer *Buffer, size fixed.Int26_6) {
	if sfntFont == nil || size == 0 {
		self.cachedAscent     = 0
		self.cachedDescent    = 0
		self.cachedLineHeight = 0
		return
	}

	metrics, err := sfntFont.Metrics(buffer, size, hinting)
	if err != nil { panic("font.Metrics error: " + err.Error()) }
	self.cachedAscent  = metrics.Ascent
	self.cachedDescent = metrics.Descent
	self.cachedLineHeight = metrics.Height
}
