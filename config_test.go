package uitxt

import "os"
import "errors"
import "io/fs"
import "testing"
import "image/color"
import "path/filepath"

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	err := config.Validate()
	if err != nil { t.Fatal(err) }

	little := config.LeftToRight.Little
	if little.File != "fonts/ChakraPetch-Regular.ttf" || little.Size != 12 || little.Bold || !little.Outline {
		t.Fatalf("unexpected little spec %+v", little)
	}
	clr, err := config.LeftToRight.Slim.RGBA()
	if err != nil { t.Fatal(err) }
	if clr != (color.RGBA{0xB4, 0x17, 0x12, 0xFF}) { t.Fatalf("unexpected slim color %v", clr) }
	for style := Style(0); style < numStyles; style++ {
		if config.RightToLeft.Get(style).File != "fonts/IBMPlexSansHebrew-Regular.ttf" {
			t.Fatalf("unexpected right-to-left font for %s", style)
		}
	}
	expectPanic(t, func() { config.LeftToRight.Get(Style(4)) })
}

func TestFontSpecColor(t *testing.T) {
	spec := FontSpec{ Color: "FFFF00" }
	clr, err := spec.RGBA()
	if err != nil { t.Fatal(err) }
	if clr != (color.RGBA{255, 255, 0, 255}) { t.Fatalf("unexpected color %v", clr) }

	spec.Color = "#fff"
	clr, err = spec.RGBA()
	if err != nil { t.Fatal(err) }
	if clr != (color.RGBA{255, 255, 255, 255}) { t.Fatalf("unexpected color %v", clr) }

	spec.Color = "yellow"
	_, err = spec.RGBA()
	if err == nil { t.Fatal("expected error") }
}

func TestConfigValidate(t *testing.T) {
	tests := []func(*Config){
		func(c *Config) { c.CacheBytes = -1 },
		func(c *Config) { c.LeftToRight.White.File = "" },
		func(c *Config) { c.LeftToRight.Red.File = "fonts/red.png" },
		func(c *Config) { c.RightToLeft.Slim.Size = 0 },
		func(c *Config) { c.RightToLeft.Little.Size = 1000 },
		func(c *Config) { c.LeftToRight.Little.Color = "red" },
	}
	for i, modify := range tests {
		config := DefaultConfig()
		modify(&config)
		err := config.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("test#%d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(`{
		"cache_bytes": 1024,
		"left_to_right": { "white": { "color": "#00FF00" } },
		"right_to_left": { "little": { "file": "fonts/other.otf", "size": 11 } }
	}`))
	if err != nil { t.Fatal(err) }
	if config.CacheBytes != 1024 { t.Fatal("cache_bytes not applied") }

	white := config.LeftToRight.White
	if white.Color != "#00FF00" { t.Fatal("color not applied") }
	if white.File != DefaultConfig().LeftToRight.White.File || white.Size != 13 || !white.Bold {
		t.Fatalf("defaults not preserved: %+v", white)
	}
	little := config.RightToLeft.Little
	if little.File != "fonts/other.otf" || little.Size != 11 || little.Color != "#FFFF00" {
		t.Fatalf("unexpected little spec %+v", little)
	}

	_, err = ParseConfig([]byte(`{ "unknown": 1 }`))
	if !errors.Is(err, ErrInvalidConfig) { t.Fatalf("expected ErrInvalidConfig, got %v", err) }
	_, err = ParseConfig([]byte(`{ "cache_bytes": `))
	if !errors.Is(err, ErrInvalidConfig) { t.Fatalf("expected ErrInvalidConfig, got %v", err) }
	_, err = ParseConfig([]byte(`{ "left_to_right": { "red": { "size": -2 } } }`))
	if !errors.Is(err, ErrInvalidConfig) { t.Fatalf("expected ErrInvalidConfig, got %v", err) }
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "uitxt.json")
	err := os.WriteFile(configPath, []byte(`{ "asset_root": "share" }`), 0o644)
	if err != nil { t.Fatal(err) }

	config, err := LoadConfig(configPath)
	if err != nil { t.Fatal(err) }
	if config.AssetRoot != filepath.Join(dir, "share") {
		t.Fatalf("unexpected asset root %q", config.AssetRoot)
	}

	_, err = LoadConfig(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) { t.Fatalf("expected fs.ErrNotExist, got %v", err) }

	err = os.WriteFile(configPath, []byte(`[]`), 0o644)
	if err != nil { t.Fatal(err) }
	_, err = LoadConfig(configPath)
	if !errors.Is(err, ErrInvalidConfig) { t.Fatalf("expected ErrInvalidConfig, got %v", err) }
}
