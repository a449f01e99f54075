package uitxt

import "strings"
import "unicode/utf8"

import "golang.org/x/text/unicode/bidi"

// Reorders a line of a right-to-left paragraph so it can be laid out
// from left to right: runs are placed in reverse logical order, and
// right-to-left runs are reversed with their paired punctuation
// mirrored. Left-to-right runs (latin words, numbers) keep their order.
//
// This only handles run ordering. Explicit embeddings, shaping and
// kerning across runs are not taken into account.
func visualOrder(text string) string {
	if text == "" { return text }

	var paragraph bidi.Paragraph
	_, err := paragraph.SetString(text, bidi.DefaultDirection(bidi.RightToLeft))
	if err != nil { return reverseMirrored(text) }
	ordering, err := paragraph.Order()
	if err != nil { return reverseMirrored(text) }

	var builder strings.Builder
	builder.Grow(len(text))
	for i := ordering.NumRuns() - 1; i >= 0; i-- {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			builder.WriteString(reverseMirrored(run.String()))
		} else {
			builder.WriteString(run.String())
		}
	}
	return builder.String()
}

// Reverses the given string rune by rune, mirroring paired punctuation.
func reverseMirrored(str string) string {
	var builder strings.Builder
	builder.Grow(len(str))
	for len(str) > 0 {
		codePoint, size := utf8.DecodeLastRuneInString(str)
		str = str[ : len(str) - size]
		builder.WriteRune(mirror(codePoint))
	}
	return builder.String()
}

// Only common paired punctuation is mirrored.
func mirror(codePoint rune) rune {
	switch codePoint {
	case '(': return ')'
	case ')': return '('
	case '[': return ']'
	case ']': return '['
	case '{': return '}'
	case '}': return '{'
	case '<': return '>'
	case '>': return '<'
	case '«': return '»'
	case '»': return '«'
	case '‹': return '›'
	case '›': return '‹'
	case '⟨': return '⟩'
	case '⟩': return '⟨'
	case '⟪': return '⟫'
	case '⟫': return '⟪'
	default:
		return codePoint
	}
}
