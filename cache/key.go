package cache

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Creates the cache key for a glyph mask.
//
// The font id is assigned by the caller and must be unique for each
// parsed font sharing the cache. Only the fractional part of fractX
// is taken into account.
func MakeKey(fontID uint32, glyph sfnt.GlyphIndex, size fixed.Int26_6, signature uint64, fractX fixed.Int26_6) [3]uint64 {
	return [3]uint64{
		uint64(fontID) << 32 | uint64(glyph) << 8 | uint64(fractX & 0x3F),
		uint64(uint32(size)),
		signature,
	}
}
