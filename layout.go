package uitxt

// The text drawing and measuring operations a [Layout] relies on.
// Satisfied by [*Catalog].
type Fonts interface {
	Draw(target TargetImage, style Style, x, y int, text string, slope int)
	MeasureWidth(text string, style Style) int
	Direction() Direction
}

var _ Fonts = (*Catalog)(nil)

// A Layout draws and measures multi-line text blocks.
//
// Lines can start with a "N|" selector prefix, where N is a single
// digit. Selector lines are only shown when the requested part
// matches N, and lines without a selector are only shown when the
// requested part is -1. This allows storing several variants of a
// text in a single string.
type Layout struct {
	fonts Fonts
}

// Creates a layout drawing with the given fonts. Panics if fonts is nil.
func NewLayout(fonts Fonts) *Layout {
	if fonts == nil { panic("NewLayout() with nil fonts") }
	return &Layout{ fonts: fonts }
}

// Draws a single line of text. Line breaks are not processed.
func (self *Layout) DrawLine(target TargetImage, x, y int, text string, style Style, slope int) {
	self.fonts.Draw(target, style, x, y, text, slope)
}

// Draws the lines of the given text visible for the given part, one
// below the other, starting at (x, y). Empty lines advance half a line.
func (self *Layout) DrawBlock(target TargetImage, x, y int, text string, slope int, style Style, part int) {
	lineHeight := LineHeight(style)
	eachLine(text, func(line string) {
		selector, body, hasSelector := parseSelector(line)
		if !isLineVisible(selector, hasSelector, part) { return }
		if body == "" {
			y += lineHeight/2
			return
		}
		self.fonts.Draw(target, style, x, y, body, slope)
		y += lineHeight
	})
}

// Draws each line of the given text horizontally centered on x,
// starting at y. Selector prefixes are not processed.
func (self *Layout) DrawCentered(target TargetImage, x, y int, text string, style Style) {
	lineHeight := LineHeight(style)
	rightToLeft := (self.fonts.Direction() == RightToLeft)
	eachLine(text, func(line string) {
		if line == "" {
			y += lineHeight/2
			return
		}
		halfWidth := self.fonts.MeasureWidth(line, style)/2
		if rightToLeft {
			self.fonts.Draw(target, style, x + halfWidth, y, line, 0)
		} else {
			self.fonts.Draw(target, style, x - halfWidth, y, line, 0)
		}
		y += lineHeight
	})
}

// Returns the height that [Layout.DrawBlock] would take with the
// same arguments.
func (self *Layout) MeasureHeight(text string, style Style, part int) int {
	lineHeight := LineHeight(style)
	height := 0
	eachLine(text, func(line string) {
		selector, body, hasSelector := parseSelector(line)
		if !isLineVisible(selector, hasSelector, part) { return }
		if body == "" {
			height += lineHeight/2
		} else {
			height += lineHeight
		}
	})
	return height
}

// Returns the width of a single line of text.
func (self *Layout) MeasureWidth(text string, style Style) int {
	return self.fonts.MeasureWidth(text, style)
}
