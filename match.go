package pmcompare

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeywordFunc reports whether keyword occurs in text.
type KeywordFunc func(text, keyword string) bool

// ContainsKeyword reports whether keyword occurs anywhere in text.
// There are no word-boundary checks, so "cost" matches inside "costs".
func ContainsKeyword(text, keyword string) bool {
	return strings.Contains(text, keyword)
}

// ContainsWord reports whether keyword occurs in text delimited by
// non-letter, non-digit characters (or the text edges) on both sides.
func ContainsWord(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], keyword)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(keyword)
		if isBoundaryBefore(text, start) && isBoundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

func isBoundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func isBoundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// TopicMatch holds the keywords of one topic found in each document.
// Both lists keep the taxonomy's keyword order and may be empty.
type TopicMatch struct {
	Topic string
	Left  []string
	Right []string
}

// Match scans every topic of the taxonomy against both texts. Texts are
// expected to be lower-cased by the caller. A nil contains defaults to
// ContainsKeyword. One TopicMatch is returned per topic, in declaration
// order.
func Match(t Taxonomy, leftText, rightText string, contains KeywordFunc) []TopicMatch {
	if contains == nil {
		contains = ContainsKeyword
	}

	matches := make([]TopicMatch, 0, len(t.Topics))
	for _, topic := range t.Topics {
		matches = append(matches, TopicMatch{
			Topic: topic.Name,
			Left:  filterKeywords(topic.Keywords, leftText, contains),
			Right: filterKeywords(topic.Keywords, rightText, contains),
		})
	}
	return matches
}

func filterKeywords(keywords []string, text string, contains KeywordFunc) []string {
	if text == "" {
		return nil
	}
	var found []string
	for _, kw := range keywords {
		if contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}
