package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*FauxBoldRasterizer)(nil)

// A rasterizer that fakes bold text by smearing each mask row to the
// right by a whole number of pixels. For high quality results, use the
// font's bold version instead.
//
// When glyphs are widened, advances should be widened too; see
// sizer.PaddedAdvanceSizer.
type FauxBoldRasterizer struct {
	DefaultRasterizer
	extraWidth int
}

// Creates a faux-bold rasterizer with the given extra width in pixels.
// Values are clamped to [0, 16].
func NewFauxBoldRasterizer(extraWidth int) *FauxBoldRasterizer {
	rast := &FauxBoldRasterizer{}
	rast.SetExtraWidth(extraWidth)
	return rast
}

// Sets the extra width for the faux-bold, in pixels. Values are
// clamped to [0, 16].
func (self *FauxBoldRasterizer) SetExtraWidth(extraWidth int) {
	if extraWidth < 0  { extraWidth = 0  }
	if extraWidth > 16 { extraWidth = 16 }
	self.extraWidth = extraWidth
}

// Returns the extra width used for the faux-bold, in pixels.
func (self *FauxBoldRasterizer) GetExtraWidth() int {
	return self.extraWidth
}

// Satisfies the [Rasterizer] interface. The signature has the 0xFB
// byte in the second highest position and the extra width in the
// lowest byte.
func (self *FauxBoldRasterizer) Signature() uint64 {
	return 0x00FB0000_00000000 | uint64(self.extraWidth)
}

// Satisfies the [Rasterizer] interface.
func (self *FauxBoldRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	mask, err := self.rasterizeWithPadding(outline, origin, self.extraWidth)
	if err != nil || self.extraWidth == 0 { return mask, err }

	width := mask.Rect.Dx()
	for row := 0; row < len(mask.Pix); row += mask.Stride {
		smearRow(mask.Pix[row : row + width], self.extraWidth)
	}
	return mask, nil
}

// Each pixel becomes the max of itself and the extraWidth pixels on
// its left. Going right to left lets us do it in place.
func smearRow(pixels []uint8, extraWidth int) {
	for x := len(pixels) - 1; x > 0; x-- {
		value := pixels[x]
		for k := 1; k <= extraWidth && k <= x; k++ {
			if pixels[x - k] > value { value = pixels[x - k] }
		}
		pixels[x] = value
	}
}
