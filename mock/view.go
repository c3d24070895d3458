package mock

import (
	"context"

	"github.com/fwojciec/pmcompare"
)

var _ pmcompare.DocumentView = (*DocumentView)(nil)

// DocumentView is a mock implementation of pmcompare.DocumentView.
type DocumentView struct {
	TextFn             func(ctx context.Context) (string, error)
	FindAndHighlightFn func(ctx context.Context, text string) (bool, error)
}

func (v *DocumentView) Text(ctx context.Context) (string, error) {
	return v.TextFn(ctx)
}

func (v *DocumentView) FindAndHighlight(ctx context.Context, text string) (bool, error) {
	return v.FindAndHighlightFn(ctx, text)
}

var _ pmcompare.ViewFactory = (*ViewFactory)(nil)

// ViewFactory is a mock implementation of pmcompare.ViewFactory.
type ViewFactory struct {
	NewViewFn func(ctx context.Context, html string) (pmcompare.DocumentView, error)
}

func (f *ViewFactory) NewView(ctx context.Context, html string) (pmcompare.DocumentView, error) {
	return f.NewViewFn(ctx, html)
}
