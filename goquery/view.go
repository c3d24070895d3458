// Package goquery provides in-memory document views over chapter XHTML
// using goquery and golang.org/x/net/html.
package goquery

import (
	"context"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pmcompare"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure View implements pmcompare.HTMLView at compile time.
var _ pmcompare.HTMLView = (*View)(nil)

// View is a parsed chapter that can report its text and carry a single
// highlight marker. View is safe for concurrent use.
type View struct {
	mu  sync.Mutex
	doc *goquery.Document
}

// NewView parses chapter HTML into a View.
func NewView(content string) (*View, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, pmcompare.Errorf(pmcompare.EINVALID, "failed to parse HTML: %v", err)
	}
	return &View{doc: doc}, nil
}

// Text returns the block-aware plain text of the chapter body.
func (v *View) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	body := v.body()
	if body == nil {
		return "", nil
	}
	return extractText(body), nil
}

// FindAndHighlight removes any existing highlight marker and wraps the first
// case-insensitive occurrence of text that lies within a single text node.
func (v *View) FindAndHighlight(ctx context.Context, text string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	v.clearHighlights()

	body := v.body()
	if body == nil || text == "" {
		return false, nil
	}

	node, start, end := findTextNode(body, text)
	if node == nil {
		return false, nil
	}
	wrap(node, start, end)
	return true, nil
}

// Highlights returns the number of highlight markers in the chapter.
func (v *View) Highlights() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.doc.Find(markSelector).Length()
}

// HTML renders the chapter, including any highlight marker.
func (v *View) HTML(_ context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.doc.Html()
}

const markSelector = "mark." + pmcompare.HighlightClass

func (v *View) body() *html.Node {
	sel := v.doc.Find("body")
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}

// clearHighlights unwraps every marker and merges the text nodes the marker
// had split, restoring the original text node layout.
func (v *View) clearHighlights() {
	marks := v.doc.Find(markSelector)
	if marks.Length() == 0 {
		return
	}

	parents := make(map[*html.Node]bool)
	marks.Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if n.Parent != nil {
			parents[n.Parent] = true
		}
		if s.Contents().Length() == 0 {
			s.Remove()
			return
		}
		s.Contents().Unwrap()
	})

	for p := range parents {
		mergeTextNodes(p)
	}
}

func mergeTextNodes(parent *html.Node) {
	for c := parent.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.TextNode && next != nil && next.Type == html.TextNode {
			c.Data += next.Data
			parent.RemoveChild(next)
			continue
		}
		c = next
	}
}

// findTextNode returns the first text node under root containing text
// (case-insensitive) and the byte span of the match.
func findTextNode(root *html.Node, text string) (*html.Node, int, int) {
	var found *html.Node
	start, end := -1, -1

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && skipAtoms[n.DataAtom] {
			return
		}
		if n.Type == html.TextNode {
			if i, j := pmcompare.IndexFold(n.Data, text); i >= 0 {
				found, start, end = n, i, j
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return found, start, end
}

// wrap replaces text node n with before/mark/after nodes, where the mark
// holds n.Data[start:end].
func wrap(n *html.Node, start, end int) {
	parent := n.Parent
	before, match, after := n.Data[:start], n.Data[start:end], n.Data[end:]

	if before != "" {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: before}, n)
	}

	mark := &html.Node{
		Type:     html.ElementNode,
		Data:     "mark",
		DataAtom: atom.Mark,
		Attr: []html.Attribute{
			{Key: "class", Val: pmcompare.HighlightClass},
			{Key: "id", Val: pmcompare.HighlightClass},
		},
	}
	mark.AppendChild(&html.Node{Type: html.TextNode, Data: match})
	parent.InsertBefore(mark, n)

	if after != "" {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: after}, n)
	}
	parent.RemoveChild(n)
}

// Ensure ViewFactory implements pmcompare.ViewFactory at compile time.
var _ pmcompare.ViewFactory = (*ViewFactory)(nil)

// ViewFactory creates in-memory views.
type ViewFactory struct{}

// NewViewFactory creates a new ViewFactory.
func NewViewFactory() *ViewFactory {
	return &ViewFactory{}
}

// NewView parses content into a View.
func (f *ViewFactory) NewView(ctx context.Context, content string) (pmcompare.DocumentView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewView(content)
}
