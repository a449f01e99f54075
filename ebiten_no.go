//go:build gtxt

package uitxt

import "math"
import "image"
import "image/color"

import "golang.org/x/image/draw"
import "golang.org/x/image/math/f64"

type TargetImage = draw.Image
type SpriteSheet = image.Image

// Draws the given mask with the given color, with its top-left corner
// at (x, y) and rotated around that corner by the given angle.
func drawMask(target TargetImage, alpha *image.Alpha, x, y int, clr color.Color, angle float64) {
	if angle == 0 {
		rect := image.Rect(x, y, x + alpha.Rect.Dx(), y + alpha.Rect.Dy())
		draw.DrawMask(target, rect, image.NewUniform(clr), image.Point{}, alpha, alpha.Rect.Min, draw.Over)
		return
	}

	src := colorize(alpha, clr)
	sin, cos := math.Sincos(angle)
	srcToTarget := f64.Aff3{
		cos, -sin, float64(x),
		sin,  cos, float64(y),
	}
	draw.BiLinear.Transform(target, srcToTarget, src, src.Bounds(), draw.Over, nil)
}

// Creates a premultiplied image of the given color shaped by the mask,
// with its bounds moved to the origin.
func colorize(alpha *image.Alpha, clr color.Color) *image.RGBA {
	r, g, b, a := clr.RGBA()
	width, height := alpha.Rect.Dx(), alpha.Rect.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcRow := alpha.Pix[y*alpha.Stride : y*alpha.Stride + width]
		dstRow := rgba.Pix[y*rgba.Stride : y*rgba.Stride + width*4]
		for x, level := range srcRow {
			if level == 0 { continue }
			l := uint32(level)*0x101
			dstRow[x*4 + 0] = uint8(((r*l)/0xFFFF) >> 8)
			dstRow[x*4 + 1] = uint8(((g*l)/0xFFFF) >> 8)
			dstRow[x*4 + 2] = uint8(((b*l)/0xFFFF) >> 8)
			dstRow[x*4 + 3] = uint8(((a*l)/0xFFFF) >> 8)
		}
	}
	return rgba
}

func drawSprite(target TargetImage, sheet SpriteSheet, rect image.Rectangle, x, y int) {
	targetRect := image.Rect(x, y, x + rect.Dx(), y + rect.Dy())
	draw.Draw(target, targetRect, sheet, rect.Min, draw.Over)
}
