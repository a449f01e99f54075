package uitxt

import "fmt"
import "math"
import "sync"
import "image"
import "image/color"

import "golang.org/x/image/draw"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/blupi-games/uitxt/cache"
import "github.com/blupi-games/uitxt/mask"
import "github.com/blupi-games/uitxt/sizer"

// Rotation applied to every layer of sloped text, in radians. Positive
// values rotate clockwise.
const slopeAngle = 2.5*math.Pi/180

// Alpha of the layer drawn over the main fill.
const translucentAlpha = 64

var outlineColor = color.RGBA{0, 0, 0, 255}

// A GlyphRenderer draws single lines of text with a fixed font, size,
// color and effects. Renderers are created by a [Catalog], one for
// each [Style] and [Direction].
//
// Renderers are immutable after creation and safe for concurrent use.
type GlyphRenderer struct {
	font *sfnt.Font
	fontID uint32
	style Style
	direction Direction
	size fixed.Int26_6
	color color.RGBA
	bold bool
	outline bool

	mutex sync.Mutex // guards everything below
	buffer sfnt.Buffer
	sizer sizer.Sizer
	rasterizer mask.Rasterizer
	cache *cache.MaskCache
}

func newGlyphRenderer(sfntFont *sfnt.Font, fontID uint32, style Style, dir Direction, spec FontSpec, maskCache *cache.MaskCache) (*GlyphRenderer, error) {
	fillColor, err := spec.RGBA()
	if err != nil { return nil, fmt.Errorf("%w: %s %s: %w", ErrInvalidConfig, dir, style, err) }

	renderer := &GlyphRenderer{
		font: sfntFont,
		fontID: fontID,
		style: style,
		direction: dir,
		size: fixed.I(spec.Size),
		color: fillColor,
		bold: spec.Bold,
		outline: spec.Outline,
		cache: maskCache,
	}

	if spec.Bold {
		extraWidth := boldExtraWidth(spec.Size)
		renderer.rasterizer = mask.NewFauxBoldRasterizer(extraWidth)
		paddedSizer := &sizer.PaddedAdvanceSizer{}
		paddedSizer.SetPadding(fixed.I(extraWidth))
		renderer.sizer = paddedSizer
	} else {
		renderer.rasterizer = &mask.DefaultRasterizer{}
		renderer.sizer = &sizer.DefaultSizer{}
	}
	renderer.sizer.NotifyChange(sfntFont, &renderer.buffer, renderer.size)
	return renderer, nil
}

// Faux-bold overhang in pixels: a tenth of the size, at least 1.
func boldExtraWidth(size int) int {
	extraWidth := size/10
	if extraWidth < 1 { return 1 }
	return extraWidth
}

// Returns the renderer's style.
func (self *GlyphRenderer) Style() Style { return self.style }

// Returns the renderer's direction. Right-to-left renderers are
// anchored at the top-right corner of the text.
func (self *GlyphRenderer) Direction() Direction { return self.direction }

// Returns the renderer's font.
func (self *GlyphRenderer) Font() *sfnt.Font { return self.font }

// Returns the font size, in pixels.
func (self *GlyphRenderer) Size() int { return self.size.Floor() }

// Returns the fill color.
func (self *GlyphRenderer) Color() color.RGBA { return self.color }

// Returns whether glyphs are drawn with faux bold.
func (self *GlyphRenderer) Bold() bool { return self.bold }

// Returns whether the 1px black outline is drawn.
func (self *GlyphRenderer) Outline() bool { return self.outline }

// Returns the extra width faux bold adds to each glyph advance, in
// pixels. Zero for regular renderers.
func (self *GlyphRenderer) BoldWidth() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	paddedSizer, isPadded := self.sizer.(*sizer.PaddedAdvanceSizer)
	if !isPadded { return 0 }
	return paddedSizer.GetPadding().Ceil()
}

// Returns the font's line height at the renderer's size, in pixels.
// This is a font metric, see [LineHeight] for text block spacing.
func (self *GlyphRenderer) LineHeight() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.sizer.LineHeight(self.font, &self.buffer, self.size).Ceil()
}

// Returns the size of the box the given line of text occupies when
// drawn, without effects. The height doesn't depend on the text.
func (self *GlyphRenderer) Measure(text string) (width, height int) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.direction == RightToLeft { text = visualOrder(text) }
	return self.advanceWidth(text, false).Ceil(), self.boxHeight()
}

// Draws the given line of text. (x, y) is the top-left corner of the
// text for left-to-right renderers, and the top-right corner for
// right-to-left ones. If slope is not zero, the text is rotated by
// 2.5 degrees around the top-left corner of each layer, clockwise for
// left-to-right and counter-clockwise for right-to-left.
//
// Layers are drawn in this order: the 1px black outline (if enabled),
// the fill color one pixel down and right, and a translucent pass of
// the fill color at the same position.
func (self *GlyphRenderer) Draw(target TargetImage, x, y int, text string, slope int) {
	if target == nil { panic("nil target image") }
	if text == "" { return }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.direction == RightToLeft { text = visualOrder(text) }
	lineMask := self.rasterizeLine(text)
	if lineMask == nil { return }

	angle := 0.0
	if slope != 0 {
		angle = slopeAngle
		if self.direction == RightToLeft { angle = -angle }
	}

	width := lineMask.Rect.Dx()
	if self.outline {
		outlined := mask.Dilate(lineMask, 1)
		outlineX := x
		if self.direction == RightToLeft { outlineX = x - outlined.Rect.Dx() }
		drawMask(target, outlined, outlineX, y, outlineColor, angle)
	}

	mainX, mainY := x + 1, y + 1
	if self.direction == RightToLeft { mainX = x - 1 - width }
	drawMask(target, lineMask, mainX, mainY, self.color, angle)
	translucent := color.NRGBA{self.color.R, self.color.G, self.color.B, translucentAlpha}
	drawMask(target, lineMask, mainX, mainY, translucent, angle)
}

func (self *GlyphRenderer) boxHeight() int {
	ascent  := self.sizer.Ascent(self.font, &self.buffer, self.size)
	descent := self.sizer.Descent(self.font, &self.buffer, self.size)
	return ascent.Ceil() + descent.Ceil()
}

func (self *GlyphRenderer) advanceWidth(text string, logMissing bool) fixed.Int26_6 {
	return self.eachGlyph(text, logMissing, nil)
}

// Calls the given function (if any) with each glyph and its horizontal
// position. Returns the total advance.
func (self *GlyphRenderer) eachGlyph(text string, logMissing bool, fn func(sfnt.GlyphIndex, fixed.Int26_6)) fixed.Int26_6 {
	var dot fixed.Int26_6
	var prevIndex sfnt.GlyphIndex
	hasPrev := false
	for _, codePoint := range text {
		if codePoint < ' ' { continue }
		index, err := self.font.GlyphIndex(&self.buffer, codePoint)
		if err != nil { panic("font.GlyphIndex error: " + err.Error()) }
		if index == 0 && logMissing {
			Logger().Debug("missing glyph", "rune", string(codePoint), "code", fmt.Sprintf("U+%04X", codePoint), "style", self.style.String(), "direction", self.direction.String())
		}

		if hasPrev {
			dot += self.sizer.Kern(self.font, &self.buffer, self.size, prevIndex, index)
		}
		if fn != nil { fn(index, dot) }
		dot += self.sizer.GlyphAdvance(self.font, &self.buffer, self.size, index)
		prevIndex, hasPrev = index, true
	}
	return dot
}

// Rasterizes the line into a mask with its top-left corner at (0, 0).
// Returns nil if there's nothing to draw.
func (self *GlyphRenderer) rasterizeLine(text string) *image.Alpha {
	width  := self.advanceWidth(text, true).Ceil()
	height := self.boxHeight()
	if width <= 0 || height <= 0 { return nil }

	lineMask := image.NewAlpha(image.Rect(0, 0, width, height))
	baseline := self.sizer.Ascent(self.font, &self.buffer, self.size).Ceil()
	self.eachGlyph(text, false, func(index sfnt.GlyphIndex, dot fixed.Int26_6) {
		glyphMask := self.glyphMask(index, dot)
		if glyphMask == nil { return }
		shift := image.Pt(dot.Floor(), baseline)
		targetRect := lineMask.Rect.Intersect(glyphMask.Rect.Add(shift))
		if targetRect.Empty() { return }
		draw.Draw(lineMask, targetRect, glyphMask, targetRect.Min.Sub(shift), draw.Over)
	})
	return lineMask
}

func (self *GlyphRenderer) glyphMask(index sfnt.GlyphIndex, dot fixed.Int26_6) *image.Alpha {
	key := cache.MakeKey(self.fontID, index, self.size, self.rasterizer.Signature(), dot)
	cached, found := self.cache.GetMask(key)
	if found { return cached }

	outline, err := self.font.LoadGlyph(&self.buffer, index, self.size, nil)
	if err != nil {
		Logger().Debug("glyph load failed", "index", int(index), "style", self.style.String(), "err", err)
		return nil
	}
	glyphMask, err := mask.Rasterize(outline, self.rasterizer, fixed.Point26_6{ X: dot })
	if err != nil { panic("glyph rasterization error: " + err.Error()) }
	self.cache.PassMask(key, glyphMask)
	return glyphMask
}
