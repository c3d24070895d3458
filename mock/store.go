package mock

import (
	"context"

	"github.com/fwojciec/pmcompare"
)

var _ pmcompare.ChapterStore = (*ChapterStore)(nil)

// ChapterStore is a mock implementation of pmcompare.ChapterStore.
type ChapterStore struct {
	SaveFn   func(ctx context.Context, ch *pmcompare.ExportedChapter) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ChapterStore) Save(ctx context.Context, ch *pmcompare.ExportedChapter) error {
	return s.SaveFn(ctx, ch)
}

func (s *ChapterStore) Commit() error {
	return s.CommitFn()
}

func (s *ChapterStore) Abort() error {
	return s.AbortFn()
}
