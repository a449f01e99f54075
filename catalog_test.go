package uitxt

import "errors"
import "io/fs"
import "testing"
import "unicode/utf8"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

func TestCatalogRenderers(t *testing.T) {
	dirFlag := NewDirectionFlag(LeftToRight)
	catalog := newTestCatalog(t, dirFlag)

	for _, dir := range []Direction{LeftToRight, RightToLeft} {
		dirFlag.SetDirection(dir)
		if catalog.Direction() != dir { t.Fatalf("expected direction %s", dir) }
		for style := Style(0); style < numStyles; style++ {
			renderer := catalog.Renderer(style)
			if renderer == nil { t.Fatalf("missing renderer %s %s", dir, style) }
			if renderer != catalog.RendererFor(style, dir) { t.Fatal("renderer selection mismatch") }
			if renderer.Style() != style || renderer.Direction() != dir {
				t.Fatalf("renderer %s %s has style %s and direction %s", style, dir, renderer.Style(), renderer.Direction())
			}
		}
	}

	if catalog.Renderer(Style(4)) != nil { t.Fatal("expected nil renderer for unknown style") }
	if catalog.RendererFor(White, Direction(3)) != nil { t.Fatal("expected nil renderer for unknown direction") }

	// styles with the same file share the parsed font
	white := catalog.RendererFor(White, LeftToRight)
	slim  := catalog.RendererFor(Slim, LeftToRight)
	if white.Font() != slim.Font() { t.Fatal("expected shared font") }
	if white.Font() == catalog.RendererFor(White, RightToLeft).Font() { t.Fatal("expected different fonts") }
	if white.Size() != 16 || !white.Bold() || !white.Outline() { t.Fatal("unexpected white renderer config") }
	if slim.Bold() || slim.Outline() { t.Fatal("unexpected slim renderer config") }
	if slim.Color().R != 0xB4 { t.Fatal("unexpected slim color") }
	if white.LineHeight() <= 0 { t.Fatal("expected positive font line height") }
	if white.BoldWidth() != 1 || slim.BoldWidth() != 0 {
		t.Fatalf("unexpected bold widths %d, %d", white.BoldWidth(), slim.BoldWidth())
	}
}

func TestGlyphRendererMeasureHeight(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	for _, style := range []Style{White, Little} {
		renderer := catalog.Renderer(style)
		var buffer sfnt.Buffer
		metrics, err := renderer.Font().Metrics(&buffer, fixed.I(renderer.Size()), font.HintingFull)
		if err != nil { t.Fatal(err) }
		_, height := renderer.Measure("Hg")
		expected := metrics.Ascent.Ceil() + metrics.Descent.Ceil()
		if height != expected {
			t.Fatalf("%s: expected height %d, got %d", style, expected, height)
		}
	}
}

func TestCatalogNilDirectionSource(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	if catalog.Direction() != LeftToRight { t.Fatal("nil source must be left-to-right") }
	if catalog.Renderer(White).Direction() != LeftToRight { t.Fatal("expected left-to-right renderer") }
}

func TestCatalogMeasureWidth(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	if catalog.MeasureWidth("", White) != 0 { t.Fatal("empty text must have zero width") }
	if catalog.MeasureWidth("Hello", Style(9)) != 0 { t.Fatal("unknown style must have zero width") }

	text := "Hello world"
	plain := catalog.MeasureWidth(text, Slim)
	bold  := catalog.MeasureWidth(text, White)
	if plain <= 0 { t.Fatal("expected positive width") }

	// same font and size, bold adds 1px per glyph
	if bold != plain + utf8.RuneCountInString(text) {
		t.Fatalf("expected bold width %d, got %d", plain + utf8.RuneCountInString(text), bold)
	}
	if catalog.MeasureWidth("Hello", Slim) >= plain { t.Fatal("expected shorter width") }

	_, height := catalog.Renderer(Little).Measure("x")
	_, emptyHeight := catalog.Renderer(Little).Measure("")
	if height <= 0 || height != emptyHeight { t.Fatal("height must not depend on the text") }

	catalog.Close()
	if catalog.MeasureWidth(text, Slim) != plain { t.Fatal("catalog must remain usable after Close()") }
}

func TestCatalogMissingRunes(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	missing, err := catalog.MissingRunes("ok \U0001F600!", White)
	if err != nil { t.Fatal(err) }
	if len(missing) != 1 || missing[0] != '\U0001F600' { t.Fatalf("unexpected missing runes %q", missing) }
	_, err = catalog.MissingRunes("ok", Style(8))
	if err == nil { t.Fatal("expected error for unknown style") }
}

func TestCatalogDrawPreconditions(t *testing.T) {
	catalog := newTestCatalog(t, nil)
	expectPanic(t, func() { catalog.Draw(nil, Style(5), 0, 0, "x", 0) })
	expectPanic(t, func() { catalog.Draw(nil, White, 0, 0, "x", 0) })
}

func TestCatalogErrors(t *testing.T) {
	config := testConfig()
	config.RightToLeft.Red.File = "fonts/missing.ttf"
	_, err := NewCatalog(config, nil)
	if !errors.Is(err, ErrMissingAsset) { t.Fatalf("expected ErrMissingAsset, got %v", err) }
	if !errors.Is(err, fs.ErrNotExist) { t.Fatalf("expected fs.ErrNotExist, got %v", err) }

	config = testConfig()
	config.LeftToRight.Slim.File = "fonts/broken.ttf"
	_, err = NewCatalog(config, nil)
	if !errors.Is(err, ErrInvalidAsset) { t.Fatalf("expected ErrInvalidAsset, got %v", err) }

	config = testConfig()
	config.LeftToRight.Slim.Size = -3
	_, err = NewCatalog(config, nil)
	if !errors.Is(err, ErrInvalidConfig) { t.Fatalf("expected ErrInvalidConfig, got %v", err) }

	config = testConfig()
	config.FS = nil
	config.AssetRoot = t.TempDir()
	_, err = NewCatalog(config, nil)
	if !errors.Is(err, ErrMissingAsset) { t.Fatalf("expected ErrMissingAsset, got %v", err) }
}

func TestDirectionFlag(t *testing.T) {
	var flag DirectionFlag
	if flag.Direction() != LeftToRight { t.Fatal("zero value must be left-to-right") }
	flag.SetDirection(RightToLeft)
	if flag.Direction() != RightToLeft { t.Fatal("expected right-to-left") }
	if NewDirectionFlag(RightToLeft).Direction() != RightToLeft { t.Fatal("expected right-to-left") }
	if LeftToRight.String() != "LeftToRight" || Little.String() != "Little" || Style(7).String() != "Style(7)" {
		t.Fatal("unexpected String() results")
	}
	if Style(4).Valid() || !Little.Valid() { t.Fatal("unexpected Valid() results") }
}
