package uitxt

import "strings"

import "github.com/rivo/uniseg"

// Lines longer than this are truncated before being drawn or measured.
const MaxLineBytes = 99

// Splits the first line from the given text. Line ends can be "\r\n",
// "\n" or a lone "\r", and are not included in the line.
func splitLine(text string) (line, rest string) {
	end := strings.IndexAny(text, "\r\n")
	if end == -1 { return text, "" }
	line, rest = text[ : end], text[end : ]
	if rest[0] == '\r' { rest = rest[1 : ] }
	if len(rest) > 0 && rest[0] == '\n' { rest = rest[1 : ] }
	return line, rest
}

// Calls the given function for each line of the given text. Lines are
// truncated to [MaxLineBytes]. Empty text has no lines, and a trailing
// line break doesn't produce an extra empty line.
func eachLine(text string, fn func(line string)) {
	var line string
	for len(text) > 0 {
		line, text = splitLine(text)
		fn(truncateLine(line))
	}
}

// Cuts the line at the last grapheme cluster boundary that fits within
// [MaxLineBytes] bytes.
func truncateLine(line string) string {
	if len(line) <= MaxLineBytes { return line }

	cut, state := 0, -1
	rest := line
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cut + len(cluster) > MaxLineBytes { break }
		cut += len(cluster)
	}
	Logger().Warn("text line truncated", "bytes", len(line), "kept", cut)
	return line[ : cut]
}

// Parses the "N|" selector prefix of a line. If present, the selector
// is the value of the first byte minus '0' and the returned body has
// the prefix stripped.
func parseSelector(line string) (selector int, body string, hasSelector bool) {
	if len(line) >= 2 && line[1] == '|' {
		return int(line[0]) - '0', line[2 : ], true
	}
	return 0, line, false
}

// Lines with a selector are visible only when part matches it. Lines
// without a selector are visible only when part is -1.
func isLineVisible(selector int, hasSelector bool, part int) bool {
	if hasSelector { return selector == part }
	return part == -1
}
