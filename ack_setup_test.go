package uitxt

// This file provides the fonts and config used by the tests, and a few
// helper functions.

import "testing"
import "testing/fstest"

import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goregular"

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"fonts/regular.ttf": &fstest.MapFile{ Data: goregular.TTF },
		"fonts/bold.ttf"   : &fstest.MapFile{ Data: gobold.TTF },
		"fonts/broken.ttf" : &fstest.MapFile{ Data: []byte("not a font") },
	}
}

// Same shape as the default config, with the Go fonts. White and Slim
// share font and size, so they only differ on bold and outline.
func testConfig() Config {
	const regular = "fonts/regular.ttf"
	const bold    = "fonts/bold.ttf"
	config := DefaultConfig()
	config.FS = testFS()
	config.LeftToRight = StyleSet{
		White : FontSpec{ File: regular, Size: 16, Color: "#FFFFFF", Bold: true , Outline: true  },
		Red   : FontSpec{ File: regular, Size: 16, Color: "#FF0000", Bold: true , Outline: true  },
		Slim  : FontSpec{ File: regular, Size: 16, Color: "#B41712", Bold: false, Outline: false },
		Little: FontSpec{ File: regular, Size: 12, Color: "#FFFF00", Bold: false, Outline: true  },
	}
	config.RightToLeft = StyleSet{
		White : FontSpec{ File: bold, Size: 16, Color: "#FFFFFF", Bold: true , Outline: true  },
		Red   : FontSpec{ File: bold, Size: 16, Color: "#FF0000", Bold: true , Outline: true  },
		Slim  : FontSpec{ File: bold, Size: 16, Color: "#B41712", Bold: false, Outline: false },
		Little: FontSpec{ File: bold, Size: 12, Color: "#FFFF00", Bold: false, Outline: true  },
	}
	return config
}

func newTestCatalog(t *testing.T, dirs DirectionSource) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(testConfig(), dirs)
	if err != nil { t.Fatal(err) }
	t.Cleanup(catalog.Close)
	return catalog
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

func expectPanic(t *testing.T, function func()) {
	t.Helper()
	if doesNotPanic(function) { t.Fatal("expected panic") }
}
