//go:build !gtxt

package uitxt

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, TargetImage defaults to [image/draw.Image].
type TargetImage = *ebiten.Image

// The image containing the big numeral sprites, see [NumeralRenderer].
//
// Without Ebitengine (gtxt version), SpriteSheet defaults to [image.Image].
type SpriteSheet = *ebiten.Image

// Draws the given mask with the given color, with its top-left corner
// at (x, y) and rotated around that corner by the given angle. The
// temporary image is deallocated right away.
func drawMask(target TargetImage, alpha *image.Alpha, x, y int, clr color.Color, angle float64) {
	img := convertAlphaImage(alpha)
	defer img.Deallocate()

	opts := ebiten.DrawImageOptions{}
	if angle != 0 {
		opts.GeoM.Rotate(angle)
		opts.Filter = ebiten.FilterLinear
	}
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorScale.ScaleWithColor(clr)
	target.DrawImage(img, &opts)
}

// Ebitengine doesn't have alpha-only images, so masks are converted
// to premultiplied white. The bounds are moved to the origin.
func convertAlphaImage(alpha *image.Alpha) *ebiten.Image {
	width, height := alpha.Rect.Dx(), alpha.Rect.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcRow := alpha.Pix[y*alpha.Stride : y*alpha.Stride + width]
		dstRow := rgba.Pix[y*rgba.Stride : y*rgba.Stride + width*4]
		for x, value := range srcRow {
			dstRow[x*4 + 0] = value
			dstRow[x*4 + 1] = value
			dstRow[x*4 + 2] = value
			dstRow[x*4 + 3] = value
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

func drawSprite(target TargetImage, sheet SpriteSheet, rect image.Rectangle, x, y int) {
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	target.DrawImage(sheet.SubImage(rect).(*ebiten.Image), &opts)
}
