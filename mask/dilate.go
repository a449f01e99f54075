package mask

import "image"

// Returns a new mask where every pixel takes the highest value found
// within the given radius in the source mask. The result bounds are
// the source bounds grown by radius on each side.
//
// This is what outlines are made of: drawing the dilated mask in a
// dark color below the regular text leaves a ring of radius pixels
// around each glyph. Radius 1 uses the full 3x3 neighbourhood, larger
// radiuses use a rounded neighbourhood.
func Dilate(src *image.Alpha, radius int) *image.Alpha {
	if src == nil { return nil }
	if radius <= 0 {
		out := image.NewAlpha(src.Rect)
		for y := 0; y < src.Rect.Dy(); y++ {
			copy(out.Pix[y*out.Stride : ], src.Pix[y*src.Stride : y*src.Stride + src.Rect.Dx()])
		}
		return out
	}

	out := image.NewAlpha(src.Rect.Inset(-radius))
	limit := radius*radius + radius
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		srcRow := src.Pix[(y - src.Rect.Min.Y)*src.Stride : ]
		for x := src.Rect.Min.X; x < src.Rect.Max.X; x++ {
			value := srcRow[x - src.Rect.Min.X]
			if value == 0 { continue }
			for dy := -radius; dy <= radius; dy++ {
				outRow := out.Pix[(y + dy - out.Rect.Min.Y)*out.Stride : ]
				for dx := -radius; dx <= radius; dx++ {
					if dx*dx + dy*dy > limit { continue }
					index := x + dx - out.Rect.Min.X
					if outRow[index] < value { outRow[index] = value }
				}
			}
		}
	}
	return out
}
