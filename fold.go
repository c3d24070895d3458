package pmcompare

import (
	"unicode"
	"unicode/utf8"
)

// IndexFold returns the byte span in s of the first occurrence of substr
// under Unicode simple case folding, compared rune by rune. It returns
// -1, -1 when there is no match or substr is empty. The span can differ in
// length from substr when a folded pair has different UTF-8 widths, such as
// the Kelvin sign and "k".
//
// Folds that expand one rune into several (for example U+0130, which
// strings.ToLower turns into "i" plus a combining dot) are not matched.
func IndexFold(s, substr string) (start, end int) {
	if substr == "" {
		return -1, -1
	}
	for i := 0; i < len(s); {
		if n, ok := hasPrefixFold(s[i:], substr); ok {
			return i, i + n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, -1
}

// ContainsFold reports whether substr occurs in s under simple case folding.
func ContainsFold(s, substr string) bool {
	start, _ := IndexFold(s, substr)
	return start >= 0
}

func hasPrefixFold(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if sr != pr && !equalFoldRune(sr, pr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

func equalFoldRune(a, b rune) bool {
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
