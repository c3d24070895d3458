package rod

import (
	"context"

	"github.com/fwojciec/pmcompare"
	"github.com/go-rod/rod"
)

// Ensure View implements pmcompare.HTMLView at compile time.
var _ pmcompare.HTMLView = (*View)(nil)

// textJS reads the rendered text of the document body.
const textJS = `() => document.body ? document.body.innerText : ""`

// highlightJS unwraps every existing marker, then wraps the first
// case-insensitive occurrence of text that lies inside a single text node.
// Code points are folded one at a time, so a match can differ in length
// from text; folds that expand to several code points never match.
const highlightJS = `(text, cls) => {
	document.querySelectorAll("mark." + cls).forEach((m) => {
		const parent = m.parentNode;
		while (m.firstChild) parent.insertBefore(m.firstChild, m);
		parent.removeChild(m);
		parent.normalize();
	});
	if (!text || !document.body) return false;
	const fold = (c) => {
		const l = c.toLowerCase();
		return [...l].length === 1 ? l : c;
	};
	const needle = [...text].map(fold);
	const matchAt = (data, i) => {
		let j = i;
		for (const c of needle) {
			if (j >= data.length) return -1;
			const d = String.fromCodePoint(data.codePointAt(j));
			if (fold(d) !== c) return -1;
			j += d.length;
		}
		return j;
	};
	const walker = document.createTreeWalker(document.body, NodeFilter.SHOW_TEXT, {
		acceptNode: (n) => {
			const p = n.parentNode ? n.parentNode.nodeName : "";
			return p === "SCRIPT" || p === "STYLE" ? NodeFilter.FILTER_REJECT : NodeFilter.FILTER_ACCEPT;
		},
	});
	for (let node = walker.nextNode(); node; node = walker.nextNode()) {
		const data = node.data;
		for (let i = 0; i < data.length; i += String.fromCodePoint(data.codePointAt(i)).length) {
			const end = matchAt(data, i);
			if (end < 0) continue;
			const range = document.createRange();
			range.setStart(node, i);
			range.setEnd(node, end);
			const mark = document.createElement("mark");
			mark.className = cls;
			mark.id = cls;
			range.surroundContents(mark);
			mark.scrollIntoView({ block: "center" });
			return true;
		}
	}
	return false;
}`

// View is a chapter loaded into a browser page.
type View struct {
	page *rod.Page
}

// Text returns the rendered innerText of the page body.
func (v *View) Text(ctx context.Context) (string, error) {
	res, err := v.page.Context(ctx).Eval(textJS)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// FindAndHighlight replaces any highlight marker with one around the first
// occurrence of text and scrolls it into view.
func (v *View) FindAndHighlight(ctx context.Context, text string) (bool, error) {
	res, err := v.page.Context(ctx).Eval(highlightJS, text, pmcompare.HighlightClass)
	if err != nil {
		return false, err
	}
	return res.Value.Bool(), nil
}

// HTML returns the current serialized document, markers included.
func (v *View) HTML(ctx context.Context) (string, error) {
	return v.page.Context(ctx).HTML()
}

// Close closes the page.
func (v *View) Close() error {
	return v.page.Close()
}
