package pmcompare

import (
	"context"
	"time"
)

// Chapter represents one spine item of an imported standard.
type Chapter struct {
	ID          string    `json:"id"`
	StandardID  string    `json:"standardId"`
	Href        string    `json:"href"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // XHTML
	Text        string    `json:"text"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	ImportedAt  time.Time `json:"importedAt"`
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.StandardID == "" {
		return Errorf(EINVALID, "chapter standard ID required")
	}
	if c.Href == "" {
		return Errorf(EINVALID, "chapter href required")
	}
	return nil
}

// DisplayTitle returns the chapter title, falling back to its href.
func (c *Chapter) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Href
}

// ChapterService represents a service for managing chapters.
type ChapterService interface {
	// CreateChapter creates a new chapter.
	// Returns ECONFLICT if the standard already has a chapter with the
	// same content.
	CreateChapter(ctx context.Context, ch *Chapter) error

	// FindChapterByID retrieves a chapter by ID.
	// Returns ENOTFOUND if chapter does not exist.
	FindChapterByID(ctx context.Context, id string) (*Chapter, error)

	// FindChapters retrieves chapters matching the filter, ordered by position.
	FindChapters(ctx context.Context, filter ChapterFilter) ([]*Chapter, error)

	// DeleteChaptersByStandard removes all chapters for a standard.
	DeleteChaptersByStandard(ctx context.Context, standardID string) error
}

// ChapterFilter represents a filter for FindChapters.
type ChapterFilter struct {
	ID         *string `json:"id"`
	StandardID *string `json:"standardId"`
	Position   *int    `json:"position"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
