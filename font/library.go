package font

import "io/fs"
import "sync"
import "path"

import "golang.org/x/image/font/sfnt"

// Alias so callers of this package don't need to import sfnt directly.
type Font = sfnt.Font

// A collection of parsed fonts indexed by their asset path.
//
// Paths are cleaned with [path.Clean] before being used as keys, so
// "fonts/./a.ttf" and "fonts/a.ttf" refer to the same entry. The library
// is safe for concurrent use.
type Library struct {
	fonts map[string]*sfnt.Font
	mutex sync.RWMutex
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library{ fonts: make(map[string]*sfnt.Font, 4) }
}

// Returns the number of fonts in the library.
func (self *Library) Size() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.fonts)
}

// Returns the font stored for the given asset path, or nil if
// it hasn't been loaded.
func (self *Library) Get(assetPath string) *sfnt.Font {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return self.fonts[path.Clean(assetPath)]
}

// Returns the font for the given asset path, parsing it from the
// given filesystem the first time it's requested. Later calls with
// the same path return the same *sfnt.Font without touching the
// filesystem again.
//
// Errors from the filesystem are returned unwrapped, so callers can
// check them with errors.Is(err, fs.ErrNotExist).
func (self *Library) Load(filesys fs.FS, assetPath string) (*sfnt.Font, error) {
	key := path.Clean(assetPath)
	if font := self.Get(key); font != nil { return font, nil }

	font, err := ParseFromFS(filesys, key)
	if err != nil { return nil, err }

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if prev, found := self.fonts[key]; found { return prev, nil }
	self.fonts[key] = font
	return font, nil
}

// Calls the given function for each font in the library, in
// pseudo-random order, stopping at the first error. The library
// must not be modified from within the callback.
func (self *Library) Each(fn func(assetPath string, font *sfnt.Font) error) error {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	for key, font := range self.fonts {
		err := fn(key, font)
		if err != nil { return err }
	}
	return nil
}
