package pmcompare

import "context"

// ExportedChapter is a chapter rendered as Markdown for export.
type ExportedChapter struct {
	Standard string
	Number   int
	Title    string
	Markdown string
}

// ChapterStore persists exported chapters with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ChapterStore interface {
	Save(ctx context.Context, ch *ExportedChapter) error
	Commit() error
	Abort() error
}
