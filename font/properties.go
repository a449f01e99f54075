package font

import "sync"
import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// sfnt.Buffers can't be shared concurrently, and property lookups are
// rare enough that a pool is all we need.
var bufferPool = sync.Pool{ New: func() any { return &sfnt.Buffer{} } }

// Returns the requested name table entry for the given font. If the
// entry is missing, [ErrNotFound] is returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buffer)
	value, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return value, err
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the runes of the given text that the font can't represent,
// in order of appearance and without duplicates. Line breaks are
// ignored.
//
// Missing runes are drawn with the font's notdef glyph, so this is
// mostly useful to validate translations against the configured fonts.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buffer)

	var missing []rune
	for _, codePoint := range text {
		if codePoint == '\n' || codePoint == '\r' { continue }
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index != 0 || containsRune(missing, codePoint) { continue }
		missing = append(missing, codePoint)
	}
	return missing, nil
}

func containsRune(runes []rune, target rune) bool {
	for _, codePoint := range runes {
		if codePoint == target { return true }
	}
	return false
}
