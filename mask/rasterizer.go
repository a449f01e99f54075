package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Rasterizer is the interface for glyph outline to alpha mask conversion.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. Only the fractional
	// part of the given origin is taken into account. The mask bounds
	// are relative to the glyph origin, so bounds.Min.Y is typically
	// negative (ascending portions above the baseline).
	Rasterize(sfnt.Segments, fixed.Point26_6) (*image.Alpha, error)

	// Returns a value that tells rasterizer configurations apart. Glyph
	// caches include it in their keys.
	Signature() uint64
}

type vectorTracer interface {
	MoveTo(fixed.Point26_6)
	LineTo(fixed.Point26_6)
	QuadTo(control, target fixed.Point26_6)
	CubeTo(controlA, controlB, target fixed.Point26_6)
}

// Rasterizes the given outline with the given rasterizer. The returned
// mask is nil when the outline has nothing to draw (e.g. spaces).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fixed.Point26_6) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil
}

func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}

// Returns the integer mask size for the given outline bounds, the offset
// that moves the outline into the positive quadrant (including the
// subpixel shift of the origin), and the offset to apply to the final
// mask rect so it's placed relative to the glyph origin.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6) (int, int, fixed.Point26_6, image.Point) {
	floorMinX := bounds.Min.X.Floor()
	floorMinY := bounds.Min.Y.Floor()
	normOffset := fixed.Point26_6{
		X: -fixed.I(floorMinX) + (origin.X & 0x3F),
		Y: -fixed.I(floorMinY) + (origin.Y & 0x3F),
	}
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width, height, normOffset, image.Pt(floorMinX, floorMinY)
}

func toFloat32s(point fixed.Point26_6) (float32, float32) {
	return float32(point.X)/64.0, float32(point.Y)/64.0
}
