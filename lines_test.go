package uitxt

import "strings"
import "testing"

func collectLines(text string) []string {
	var lines []string
	eachLine(text, func(line string) { lines = append(lines, line) })
	return lines
}

func TestEachLine(t *testing.T) {
	tests := []struct { in string ; out []string }{
		{ "", nil },
		{ "a", []string{"a"} },
		{ "a\n", []string{"a"} },
		{ "\n", []string{""} },
		{ "a\nb", []string{"a", "b"} },
		{ "a\r\nb\rc\n", []string{"a", "b", "c"} },
		{ "a\n\nb", []string{"a", "", "b"} },
		{ "a\n\rb", []string{"a", "", "b"} },
	}

	for i, test := range tests {
		lines := collectLines(test.in)
		if len(lines) != len(test.out) {
			t.Fatalf("test#%d: expected %d lines, got %d (%q)", i, len(test.out), len(lines), lines)
		}
		for j := range lines {
			if lines[j] != test.out[j] {
				t.Fatalf("test#%d: line %d expected %q, got %q", i, j, test.out[j], lines[j])
			}
		}
	}
}

func TestTruncateLine(t *testing.T) {
	short := strings.Repeat("a", MaxLineBytes)
	if truncateLine(short) != short { t.Fatal("line at the limit must not be truncated") }

	long := strings.Repeat("a", 150)
	if len(truncateLine(long)) != MaxLineBytes {
		t.Fatalf("expected %d bytes, got %d", MaxLineBytes, len(truncateLine(long)))
	}

	// 'é' is two bytes, can't be split
	accented := strings.Repeat("é", 60)
	cut := truncateLine(accented)
	if len(cut) != 98 { t.Fatalf("expected 98 bytes, got %d", len(cut)) }
	if cut != strings.Repeat("é", 49) { t.Fatal("unexpected truncation") }

	// 'e' + combining acute accent form a single grapheme (3 bytes)
	combined := strings.Repeat("e\u0301", 40)
	cut = truncateLine(combined)
	if len(cut) != 99 { t.Fatalf("expected 99 bytes, got %d", len(cut)) }
	if strings.HasSuffix(cut, "e") { t.Fatal("grapheme cluster split") }

	lines := collectLines(long + "\nb")
	if len(lines) != 2 || len(lines[0]) != MaxLineBytes || lines[1] != "b" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestParseSelector(t *testing.T) {
	selector, body, hasSelector := parseSelector("2|Hello")
	if !hasSelector || selector != 2 || body != "Hello" {
		t.Fatalf("got %d, %q, %v", selector, body, hasSelector)
	}

	selector, body, hasSelector = parseSelector("1|")
	if !hasSelector || selector != 1 || body != "" {
		t.Fatalf("got %d, %q, %v", selector, body, hasSelector)
	}

	_, body, hasSelector = parseSelector("Hello")
	if hasSelector || body != "Hello" { t.Fatal("unexpected selector") }
	_, body, hasSelector = parseSelector("|x")
	if hasSelector || body != "|x" { t.Fatal("unexpected selector") }
	_, _, hasSelector = parseSelector("")
	if hasSelector { t.Fatal("unexpected selector") }

	// '/' - '0' is -1, but it's still a selector line
	selector, _, hasSelector = parseSelector("/|x")
	if !hasSelector || selector != -1 { t.Fatal("expected selector -1") }
	if isLineVisible(selector, hasSelector, 5) { t.Fatal("unexpected visibility") }
}

func TestIsLineVisible(t *testing.T) {
	if !isLineVisible(0, false, -1) { t.Fatal("plain line must be visible for part -1") }
	if  isLineVisible(0, false,  1) { t.Fatal("plain line must be hidden for part 1") }
	if !isLineVisible(1, true ,  1) { t.Fatal("selector line must be visible for its part") }
	if  isLineVisible(1, true ,  2) { t.Fatal("selector line must be hidden for other parts") }
	if  isLineVisible(1, true , -1) { t.Fatal("selector line must be hidden for part -1") }
}
