package pmcompare

import "context"

// Publication is the readable content of an EPUB file.
type Publication struct {
	Title    string
	Chapters []PublicationChapter
}

// PublicationChapter is one XHTML spine item, in reading order.
type PublicationChapter struct {
	Href    string
	Title   string
	Content string
}

// PublicationReader reads publications from disk.
type PublicationReader interface {
	// ReadPublication opens the file at path and returns its chapters.
	// Returns EINVALID if the file is not a readable EPUB.
	ReadPublication(ctx context.Context, path string) (*Publication, error)
}

// ViewFactory loads chapter XHTML into a DocumentView.
type ViewFactory interface {
	NewView(ctx context.Context, html string) (DocumentView, error)
}
