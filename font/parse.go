package font

import "io"
import "io/fs"
import "errors"
import "strings"

import "golang.org/x/image/font/sfnt"

// Returned when trying to parse an asset whose path doesn't end in
// .ttf or .otf.
var ErrBadExtension = errors.New("font asset must be a .ttf or .otf file")

// Parses the given font data. The bytes must not be modified while
// the font is in use.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, error) {
	return sfnt.Parse(fontBytes)
}

// Parses the font at the given path of the given filesystem. This is
// the function used by the [Library], and it also works with [embed.FS].
//
// [embed.FS]: https://pkg.go.dev/embed#FS
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, error) {
	if !hasValidFontExtension(path) { return nil, ErrBadExtension }
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseAndClose(file)
}

func parseAndClose(file io.ReadCloser) (*sfnt.Font, error) {
	data, err := io.ReadAll(file)
	closeErr := file.Close()
	if err != nil { return nil, err }
	if closeErr != nil { return nil, closeErr }
	return ParseFromBytes(data)
}

func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	ext := strings.ToLower(path[len(path) - 4 : ])
	return ext == ".ttf" || ext == ".otf"
}
