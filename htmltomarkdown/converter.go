// Package htmltomarkdown renders chapter XHTML as Markdown for reading in
// a terminal.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pmcompare"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Converter implements pmcompare.Converter at compile time.
var _ pmcompare.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert chapter HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms chapter HTML into Markdown. Highlight markers become
// strong emphasis.
func (c *Converter) Convert(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", pmcompare.Errorf(pmcompare.EINVALID, "empty HTML input")
	}

	if strings.Contains(content, pmcompare.HighlightClass) {
		rewritten, err := emphasizeHighlights(content)
		if err != nil {
			return "", err
		}
		content = rewritten
	}

	result, err := c.conv.ConvertString(content)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// emphasizeHighlights turns every highlight <mark> into a bare <strong>.
func emphasizeHighlights(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	doc.Find("mark." + pmcompare.HighlightClass).Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			n.Data = "strong"
			n.DataAtom = atom.Strong
			n.Attr = []html.Attribute(nil)
		}
	})

	return doc.Html()
}
