package uitxt

import "strconv"

// Font styles available to the game UI. Each style has a left-to-right
// and a right-to-left configuration, see [Config].
type Style uint8
const (
	White  Style = iota // bold white with outline, the default
	Red                 // bold red with outline
	Slim                // plain dark red, no outline
	Little              // small yellow with outline
)

const numStyles = 4

// Vertical advance for text lines, in pixels.
const (
	dimTextY   = 16
	dimLittleY = 12
)

func (self Style) String() string {
	switch self {
	case White : return "White"
	case Red   : return "Red"
	case Slim  : return "Slim"
	case Little: return "Little"
	default:
		return "Style(" + strconv.Itoa(int(self)) + ")"
	}
}

// Returns whether the style is one of the known styles.
func (self Style) Valid() bool { return self < numStyles }

// Returns the vertical advance between lines of a text block for
// the given style. Empty lines advance only half of it.
func LineHeight(style Style) int {
	if style == Little { return dimLittleY - 2 }
	return dimTextY
}
