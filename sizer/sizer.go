// The sizer subpackage provides the font metrics used to lay glyphs
// out: ascent, descent, line height, advances and kerning.
package sizer

import . "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// When rasterizing or measuring a line we need some information
// related to the font metrics: how much to advance after each glyph,
// the kerning between glyph pairs, where the baseline goes. Sizers are
// the interface renderers use to obtain that information.
//
// The font, buffer and size passed to the methods must be consistent
// with the latest NotifyChange() call.
type Sizer interface {
	// Returns the ascent of the given font at the given size, as an
	// absolute value.
	Ascent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the descent of the given font at the given size, as an
	// absolute value.
	Descent(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the line height of the given font at the given size.
	LineHeight(*Font, *Buffer, fixed.Int26_6) fixed.Int26_6

	// Returns the advance of the given glyph.
	GlyphAdvance(*Font, *Buffer, fixed.Int26_6, GlyphIndex) fixed.Int26_6

	// Returns the kerning between two glyphs.
	Kern(*Font, *Buffer, fixed.Int26_6, GlyphIndex, GlyphIndex) fixed.Int26_6

	// Must be called whenever the font or size change so the sizer
	// can cache whatever it needs.
	NotifyChange(*Font, *Buffer, fixed.Int26_6)
}
