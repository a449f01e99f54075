package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	normOffset fixed.Point26_6 // x/image/vector expects coords in the positive quadrant
}

// Satisfies the [Rasterizer] interface. The default rasterizer
// signature is always zero.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

// Moves the current position to the given point.
func (self *DefaultRasterizer) MoveTo(point fixed.Point26_6) {
	self.rasterizer.MoveTo(toFloat32s(point.Add(self.normOffset)))
}

// Creates a straight boundary from the current position to the given point.
func (self *DefaultRasterizer) LineTo(point fixed.Point26_6) {
	self.rasterizer.LineTo(toFloat32s(point.Add(self.normOffset)))
}

// Creates a quadratic Bézier curve to the given target passing
// through the given control point.
func (self *DefaultRasterizer) QuadTo(control, target fixed.Point26_6) {
	cx, cy := toFloat32s(control.Add(self.normOffset))
	tx, ty := toFloat32s(target.Add(self.normOffset))
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Creates a cubic Bézier curve to the given target passing through
// the given control points.
func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fixed.Point26_6) {
	cax, cay := toFloat32s(controlA.Add(self.normOffset))
	cbx, cby := toFloat32s(controlB.Add(self.normOffset))
	tx , ty  := toFloat32s(target.Add(self.normOffset))
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	return self.rasterizeWithPadding(outline, origin, 0)
}

// Rasterizes the outline into a mask widened by extraWidth pixels
// on the right side.
func (self *DefaultRasterizer) rasterizeWithPadding(outline sfnt.Segments, origin fixed.Point26_6, extraWidth int) (*image.Alpha, error) {
	bounds := outline.Bounds()
	bounds.Max.X += fixed.I(extraWidth)

	width, height, normOffset, rectOffset := figureOutBounds(bounds, origin)
	self.normOffset = normOffset
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	mask := image.NewAlpha(self.rasterizer.Bounds())
	processOutline(self, outline)

	// the source is uniform, so the sampling start point doesn't matter
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(rectOffset)
	return mask, nil
}
