package uitxt

import "sync/atomic"

// Script directions. [Catalog] renderers exist for both directions.
//
// Directions can be casted directly to [unicode/bidi] directions:
//   bidi.Direction(uitxt.RightToLeft).
//
// [unicode/bidi]: https://pkg.go.dev/golang.org/x/text/unicode/bidi
type Direction int8
const (
	LeftToRight Direction = iota
	RightToLeft
)

func (self Direction) String() string {
	switch self {
	case LeftToRight: return "LeftToRight"
	case RightToLeft: return "RightToLeft"
	default:
		return "UnknownDirection"
	}
}

// The source of the current script direction. The game usually
// derives it from the active locale.
type DirectionSource interface {
	Direction() Direction
}

// A [DirectionSource] that can be changed at any time, from any
// goroutine. The zero value is left-to-right.
type DirectionFlag struct {
	rightToLeft atomic.Bool
}

// Creates a new flag with the given initial direction.
func NewDirectionFlag(dir Direction) *DirectionFlag {
	flag := &DirectionFlag{}
	flag.SetDirection(dir)
	return flag
}

// Satisfies the [DirectionSource] interface.
func (self *DirectionFlag) Direction() Direction {
	if self.rightToLeft.Load() { return RightToLeft }
	return LeftToRight
}

// Sets the current direction.
func (self *DirectionFlag) SetDirection(dir Direction) {
	self.rightToLeft.Store(dir == RightToLeft)
}

func directionOf(source DirectionSource) Direction {
	if source == nil { return LeftToRight }
	return source.Direction()
}
