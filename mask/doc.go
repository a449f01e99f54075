// The mask subpackage turns glyph outlines into alpha masks.
//
// [DefaultRasterizer] wraps [golang.org/x/image/vector.Rasterizer],
// [FauxBoldRasterizer] widens glyphs horizontally for the bold styles,
// and [Dilate] grows an already rasterized mask, which is how text
// outlines are produced.
//
// Rasterizers are not safe for concurrent use.
package mask
