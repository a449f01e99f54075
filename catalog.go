package uitxt

import "fmt"
import "errors"
import "io/fs"
import "context"
import "log/slog"

import "golang.org/x/image/font/sfnt"

import "github.com/blupi-games/uitxt/cache"
import "github.com/blupi-games/uitxt/font"

// A Catalog holds the [GlyphRenderer] for each [Style] and [Direction],
// and picks the direction from a [DirectionSource].
//
// Catalogs satisfy the [Fonts] interface used by [Layout].
type Catalog struct {
	renderers [2][numStyles]*GlyphRenderer
	direction DirectionSource
	library *font.Library
	cache *cache.MaskCache
}

// Creates a catalog with all the renderers described by the given
// config. All fonts are loaded right away: a missing file returns an
// error wrapping [ErrMissingAsset] and [fs.ErrNotExist], an unreadable
// or broken font one wrapping [ErrInvalidAsset].
//
// A nil direction source means left-to-right.
func NewCatalog(config Config, dirs DirectionSource) (*Catalog, error) {
	err := config.Validate()
	if err != nil { return nil, err }

	catalog := &Catalog{
		direction: dirs,
		library: font.NewLibrary(),
		cache: cache.NewMaskCache(config.CacheBytes),
	}

	filesys := config.filesystem()
	fontIDs := make(map[*sfnt.Font]uint32, 4)
	for _, dir := range [...]Direction{LeftToRight, RightToLeft} {
		styles := config.Styles(dir)
		for style := Style(0); style < numStyles; style++ {
			spec := *styles.Get(style)
			sfntFont, err := catalog.loadFont(filesys, spec.File)
			if err != nil { return nil, err }

			fontID, found := fontIDs[sfntFont]
			if !found {
				fontID = uint32(len(fontIDs) + 1)
				fontIDs[sfntFont] = fontID
			}

			renderer, err := newGlyphRenderer(sfntFont, fontID, style, dir, spec, catalog.cache)
			if err != nil { return nil, err }
			catalog.renderers[dir][style] = renderer
		}
	}
	return catalog, nil
}

func (self *Catalog) loadFont(filesys fs.FS, file string) (*sfnt.Font, error) {
	sfntFont, err := self.library.Load(filesys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrMissingAsset, file, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidAsset, file, err)
	}

	name, err := font.GetName(sfntFont)
	if err != nil { name = "?" }
	Logger().Debug("font loaded", "file", file, "name", name)
	return sfntFont, nil
}

// Returns the current script direction.
func (self *Catalog) Direction() Direction {
	return directionOf(self.direction)
}

// Returns the renderer for the given style in the current direction,
// or nil if the style is unknown.
func (self *Catalog) Renderer(style Style) *GlyphRenderer {
	return self.RendererFor(style, self.Direction())
}

// Returns the renderer for the given style and direction, or nil if
// either is unknown.
func (self *Catalog) RendererFor(style Style, dir Direction) *GlyphRenderer {
	if !style.Valid() { return nil }
	if dir != LeftToRight && dir != RightToLeft { return nil }
	return self.renderers[dir][style]
}

// Returns the width of the given line of text in the given style, or
// 0 for unknown styles. Outline and shadow offsets are not included.
func (self *Catalog) MeasureWidth(text string, style Style) int {
	renderer := self.Renderer(style)
	if renderer == nil { return 0 }
	width, _ := renderer.Measure(text)
	return width
}

// Draws a single line of text with the renderer for the given style,
// see [GlyphRenderer.Draw]. Panics if the style is unknown.
func (self *Catalog) Draw(target TargetImage, style Style, x, y int, text string, slope int) {
	renderer := self.Renderer(style)
	if renderer == nil { panic("Catalog.Draw() with unknown style " + style.String()) }
	renderer.Draw(target, x, y, text, slope)
}

// Returns the runes of the given text that the font of the given style
// can't represent in the current direction. Useful to check translations.
func (self *Catalog) MissingRunes(text string, style Style) ([]rune, error) {
	renderer := self.Renderer(style)
	if renderer == nil { return nil, fmt.Errorf("unknown style %s", style) }
	return font.GetMissingRunes(renderer.Font(), text)
}

// Releases the cached glyph masks. The catalog remains usable, but
// masks will have to be rasterized again.
func (self *Catalog) Close() {
	logger := Logger()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		_ = self.library.Each(func(file string, sfntFont *sfnt.Font) error {
			family, err := font.GetFamily(sfntFont)
			if err != nil { family = "?" }
			logger.Debug("catalog font", "file", file, "family", family)
			return nil
		})
	}
	logger.Debug("glyph mask cache released",
		"fonts", self.library.Size(),
		"entries", self.cache.NumEntries(),
		"bytes", self.cache.ApproxByteSize(),
		"peak_bytes", self.cache.PeakSize(),
		"evictions", self.cache.Evictions())
	self.cache.Clear()
}
