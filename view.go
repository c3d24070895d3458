package pmcompare

import "context"

// DocumentView is a loaded, rendered document that can be queried for its
// text and asked to highlight a passage.
type DocumentView interface {
	// Text returns the plain text of the loaded resource with case preserved.
	Text(ctx context.Context) (string, error)

	// FindAndHighlight removes any existing highlight marker, then marks the
	// first occurrence of text and brings it into view. Returns false when
	// text does not occur in the currently loaded resource.
	FindAndHighlight(ctx context.Context, text string) (bool, error)
}

// HighlightClass is the class attribute of highlight markers.
const HighlightClass = "pm-highlight"

// HTMLView is a DocumentView that can serialize its current document,
// highlight marker included.
type HTMLView interface {
	DocumentView
	HTML(ctx context.Context) (string, error)
}
