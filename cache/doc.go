// The cache subpackage defines the [MaskCache] used to store glyph
// masks after rasterization.
//
// Glyph masks are keyed by font, glyph index, size, rasterizer
// signature and fractional horizontal position. Each cached mask takes
// roughly its pixel count in bytes, plus a small fixed overhead: a
// 13px font produces masks of around 100-200 bytes, so a cache of 256KiB
// is plenty for the few fonts and sizes a game UI uses.
//
// When the cache is full, a few entries are sampled at random and the
// coldest one (least bytes accessed per unit of time) is evicted.
package cache
