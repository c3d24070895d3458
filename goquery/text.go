package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockAtoms start a new line during text extraction.
var blockAtoms = map[atom.Atom]bool{
	atom.P:          true,
	atom.Br:         true,
	atom.Div:        true,
	atom.Section:    true,
	atom.Article:    true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Li:         true,
	atom.Tr:         true,
	atom.Blockquote: true,
	atom.Hr:         true,
	atom.Pre:        true,
	atom.Table:      true,
	atom.Ul:         true,
	atom.Ol:         true,
}

// skipAtoms are never rendered as text.
var skipAtoms = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Head:     true,
	atom.Template: true,
	atom.Noscript: true,
}

// extractText renders the text under root the way a reader would see it:
// whitespace runs collapse to one space and block elements break lines.
func extractText(root *html.Node) string {
	var lines []string
	var line strings.Builder

	flush := func() {
		if s := strings.TrimSpace(line.String()); s != "" {
			lines = append(lines, s)
		}
		line.Reset()
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			line.WriteString(collapseSpace(n.Data))
			return
		case html.ElementNode:
			if skipAtoms[n.DataAtom] {
				return
			}
			if blockAtoms[n.DataAtom] {
				flush()
				defer flush()
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	flush()

	return strings.Join(lines, "\n")
}

// collapseSpace replaces each run of whitespace with a single space,
// keeping a leading or trailing space so adjacent inline text stays separated.
func collapseSpace(s string) string {
	if s == "" {
		return s
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return " "
	}
	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

// ChapterTitle returns the best title for chapter HTML: the first non-empty
// h1, h2 or <title>, in that order. Returns "" when none is found or the
// HTML cannot be parsed.
func ChapterTitle(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}
	for _, selector := range []string{"body h1", "body h2", "head title"} {
		if title := strings.TrimSpace(doc.Find(selector).First().Text()); title != "" {
			return strings.Join(strings.Fields(title), " ")
		}
	}
	return ""
}
