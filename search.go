package pmcompare

import (
	"strings"
	"unicode/utf8"
)

// snippetContext is the number of bytes of text kept on each side of a
// match in a ChapterHit snippet.
const snippetContext = 40

// ChapterHit is a chapter matching a search query.
type ChapterHit struct {
	Number  int // 1-based, in reading order
	Title   string
	Snippet string
}

// SearchChapters returns, in reading order, the chapters whose title
// contains query, ignoring case. With inText, chapters whose extracted text
// contains query match too, with a snippet around the first occurrence.
// An empty query matches nothing.
func SearchChapters(chapters []*Chapter, query string, inText bool) []ChapterHit {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var hits []ChapterHit
	for _, ch := range chapters {
		title := ch.DisplayTitle()
		hit := ChapterHit{Number: ch.Position + 1, Title: title}
		switch {
		case ContainsFold(ch.Title, query):
			hit.Snippet = "Found in: " + title
		case inText:
			start, end := IndexFold(ch.Text, query)
			if start < 0 {
				continue
			}
			hit.Snippet = "Found in text: " + snippet(ch.Text, start, end)
		default:
			continue
		}
		hits = append(hits, hit)
	}
	return hits
}

// snippet returns text[start:end] with surrounding context on one line,
// marking cut edges with "...".
func snippet(text string, start, end int) string {
	from := max(start-snippetContext, 0)
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	to := min(end+snippetContext, len(text))
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}

	s := strings.Join(strings.Fields(text[from:to]), " ")
	if from > 0 {
		s = "..." + s
	}
	if to < len(text) {
		s += "..."
	}
	return s
}
