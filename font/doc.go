// The font subpackage parses the font assets used by the UI styles and
// keeps them in a [Library] indexed by asset path, so that several styles
// configured with the same file end up sharing a single parsed font.
//
// It also provides small helpers to query font properties (name, family)
// and to check which runes of a text can't be represented by a font.
package font
