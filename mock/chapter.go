package mock

import (
	"context"

	"github.com/fwojciec/pmcompare"
)

var _ pmcompare.ChapterService = (*ChapterService)(nil)

// ChapterService is a mock implementation of pmcompare.ChapterService.
type ChapterService struct {
	CreateChapterFn            func(ctx context.Context, ch *pmcompare.Chapter) error
	FindChapterByIDFn          func(ctx context.Context, id string) (*pmcompare.Chapter, error)
	FindChaptersFn             func(ctx context.Context, filter pmcompare.ChapterFilter) ([]*pmcompare.Chapter, error)
	DeleteChaptersByStandardFn func(ctx context.Context, standardID string) error
}

func (s *ChapterService) CreateChapter(ctx context.Context, ch *pmcompare.Chapter) error {
	return s.CreateChapterFn(ctx, ch)
}

func (s *ChapterService) FindChapterByID(ctx context.Context, id string) (*pmcompare.Chapter, error) {
	return s.FindChapterByIDFn(ctx, id)
}

func (s *ChapterService) FindChapters(ctx context.Context, filter pmcompare.ChapterFilter) ([]*pmcompare.Chapter, error) {
	return s.FindChaptersFn(ctx, filter)
}

func (s *ChapterService) DeleteChaptersByStandard(ctx context.Context, standardID string) error {
	return s.DeleteChaptersByStandardFn(ctx, standardID)
}
