package uitxt

import "os"
import "fmt"
import "path"
import "bytes"
import "errors"
import "io/fs"
import "strings"
import "image/color"
import "path/filepath"
import "encoding/json"

import "github.com/lucasb-eyer/go-colorful"

// The default size of the glyph mask cache shared by all the renderers
// of a [Catalog].
const DefaultCacheBytes = 256*1024

// The configuration of a single font style.
type FontSpec struct {
	File    string `json:"file"`    // asset path relative to the asset root
	Size    int    `json:"size"`    // in pixels
	Color   string `json:"color"`   // hex, like "#FFFF00"
	Bold    bool   `json:"bold"`    // faux-bold
	Outline bool   `json:"outline"` // 1px black outline
}

// Returns the parsed fill color of the font spec.
func (self FontSpec) RGBA() (color.RGBA, error) {
	hex := self.Color
	if !strings.HasPrefix(hex, "#") { hex = "#" + hex }
	parsed, err := colorful.Hex(hex)
	if err != nil { return color.RGBA{}, err }
	r, g, b := parsed.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

func (self FontSpec) validate() error {
	if self.File == "" { return errors.New("missing font file") }
	switch strings.ToLower(path.Ext(self.File)) {
	case ".ttf", ".otf": // ok
	default:
		return fmt.Errorf("font file %q must be .ttf or .otf", self.File)
	}
	if self.Size <= 0 || self.Size > 256 {
		return fmt.Errorf("font size %d out of range [1, 256]", self.Size)
	}
	if _, err := self.RGBA(); err != nil {
		return fmt.Errorf("bad color %q: %w", self.Color, err)
	}
	return nil
}

// The font specs for each [Style] in one script direction.
type StyleSet struct {
	White  FontSpec `json:"white"`
	Red    FontSpec `json:"red"`
	Slim   FontSpec `json:"slim"`
	Little FontSpec `json:"little"`
}

// Returns the spec for the given style. Panics on unknown styles.
func (self *StyleSet) Get(style Style) *FontSpec {
	switch style {
	case White : return &self.White
	case Red   : return &self.Red
	case Slim  : return &self.Slim
	case Little: return &self.Little
	default:
		panic("unknown style " + style.String())
	}
}

// Configuration for a [Catalog].
type Config struct {
	// Directory the font files are relative to. Ignored if FS is set.
	AssetRoot string `json:"asset_root"`

	// Filesystem to read the font files from, like an embed.FS.
	// If nil, os.DirFS(AssetRoot) is used.
	FS fs.FS `json:"-"`

	// Memory bound for the glyph mask cache. Zero disables caching.
	CacheBytes int `json:"cache_bytes"`

	LeftToRight StyleSet `json:"left_to_right"`
	RightToLeft StyleSet `json:"right_to_left"`
}

// Returns the default configuration: the game presets with font files
// under "fonts/" relative to the working directory.
func DefaultConfig() Config {
	const latin  = "fonts/NovaSlim-Regular.ttf"
	const little = "fonts/ChakraPetch-Regular.ttf"
	const hebrew = "fonts/IBMPlexSansHebrew-Regular.ttf"
	return Config{
		AssetRoot: ".",
		CacheBytes: DefaultCacheBytes,
		LeftToRight: StyleSet{
			White : FontSpec{ File: latin , Size: 13, Color: "#FFFFFF", Bold: true , Outline: true  },
			Red   : FontSpec{ File: latin , Size: 13, Color: "#FF0000", Bold: true , Outline: true  },
			Slim  : FontSpec{ File: latin , Size: 12, Color: "#B41712", Bold: false, Outline: false },
			Little: FontSpec{ File: little, Size: 12, Color: "#FFFF00", Bold: false, Outline: true  },
		},
		RightToLeft: StyleSet{
			White : FontSpec{ File: hebrew, Size: 13, Color: "#FFFFFF", Bold: true , Outline: true  },
			Red   : FontSpec{ File: hebrew, Size: 13, Color: "#FF0000", Bold: true , Outline: true  },
			Slim  : FontSpec{ File: hebrew, Size: 12, Color: "#B41712", Bold: false, Outline: false },
			Little: FontSpec{ File: hebrew, Size: 12, Color: "#FFFF00", Bold: false, Outline: true  },
		},
	}
}

// Returns the style set for the given direction.
func (self *Config) Styles(dir Direction) *StyleSet {
	if dir == RightToLeft { return &self.RightToLeft }
	return &self.LeftToRight
}

// Checks that the configuration can be used to create a [Catalog].
// Returned errors wrap [ErrInvalidConfig].
func (self *Config) Validate() error {
	if self.CacheBytes < 0 {
		return fmt.Errorf("%w: negative cache size (%d)", ErrInvalidConfig, self.CacheBytes)
	}
	for _, dir := range [...]Direction{LeftToRight, RightToLeft} {
		styles := self.Styles(dir)
		for style := Style(0); style < numStyles; style++ {
			err := styles.Get(style).validate()
			if err != nil {
				return fmt.Errorf("%w: %s %s: %w", ErrInvalidConfig, dir, style, err)
			}
		}
	}
	return nil
}

func (self *Config) filesystem() fs.FS {
	if self.FS != nil { return self.FS }
	root := self.AssetRoot
	if root == "" { root = "." }
	return os.DirFS(root)
}

// Parses a JSON configuration. Fields missing from the JSON keep the
// values from [DefaultConfig]. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&config)
	if err != nil { return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err) }
	err = config.Validate()
	if err != nil { return Config{}, err }
	return config, nil
}

// Loads a JSON configuration file, see [ParseConfig]. A relative or
// missing asset_root is resolved against the config file directory.
func LoadConfig(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil { return Config{}, err }
	config, err := ParseConfig(data)
	if err != nil { return Config{}, fmt.Errorf("%s: %w", configPath, err) }
	if !filepath.IsAbs(config.AssetRoot) {
		config.AssetRoot = filepath.Join(filepath.Dir(configPath), config.AssetRoot)
	}
	return config, nil
}
