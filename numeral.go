package uitxt

import "image"
import "strconv"

// Horizontal start of each digit in the numeral sprite sheet. Digit d
// spans [numeralTable[d], numeralTable[d + 1]).
var numeralTable = [11]int{0, 53, 87, 133, 164, 217, 253, 297, 340, 382, 426}

const (
	numeralHeight = 52
	numeralGap    = 4
)

// A NumeralRenderer draws non-negative integers with the big digit
// sprites of a sprite sheet. The sheet must contain the digits 0 to 9
// side by side on a 52px tall row, at the positions given by
// [NumeralRenderer.DigitSlot].
type NumeralRenderer struct {
	sheet SpriteSheet
}

// Creates a numeral renderer for the given sheet. The sheet may be nil
// if the renderer is only used for measuring.
func NewNumeralRenderer(sheet SpriteSheet) *NumeralRenderer {
	return &NumeralRenderer{ sheet: sheet }
}

// Returns the horizontal offset and the width of the given digit in
// the sprite sheet. Panics if digit is not within [0, 9].
func (self *NumeralRenderer) DigitSlot(digit int) (offset, width int) {
	if digit < 0 || digit > 9 { panic("digit " + strconv.Itoa(digit) + " out of range") }
	return numeralTable[digit], numeralTable[digit + 1] - numeralTable[digit]
}

// Returns the sprite sheet rectangle of the given digit.
func (self *NumeralRenderer) DigitRect(digit int) image.Rectangle {
	offset, width := self.DigitSlot(digit)
	return image.Rect(offset, 0, offset + width, numeralHeight)
}

// Draws the given number with its top-left corner at (x, y). Digits are
// separated by a 4px gap. Panics if n is negative or the renderer has
// no sheet.
func (self *NumeralRenderer) Draw(target TargetImage, x, y int, n int) {
	if target == nil { panic("nil target image") }
	if self.sheet == nil { panic("NumeralRenderer.Draw() without sprite sheet") }
	for _, digit := range numeralDigits(n) {
		rect := self.DigitRect(digit)
		drawSprite(target, self.sheet, rect, x, y)
		x += rect.Dx() + numeralGap
	}
}

// Returns the width [NumeralRenderer.Draw] would take for the given
// number. Panics if n is negative.
func (self *NumeralRenderer) MeasureWidth(n int) int {
	width := -numeralGap
	for _, digit := range numeralDigits(n) {
		_, digitWidth := self.DigitSlot(digit)
		width += digitWidth + numeralGap
	}
	return width
}

// Returns the height of the numeral sprites.
func (self *NumeralRenderer) Height() int { return numeralHeight }

func numeralDigits(n int) []int {
	if n < 0 { panic("negative numeral " + strconv.Itoa(n)) }
	str := strconv.Itoa(n)
	digits := make([]int, len(str))
	for i := 0; i < len(str); i++ {
		digits[i] = int(str[i] - '0')
	}
	return digits
}
