// Package slog provides logging decorators for pmcompare interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pmcompare"
)

// Ensure LoggingView implements pmcompare.HTMLView.
var _ pmcompare.HTMLView = (*LoggingView)(nil)

// LoggingView wraps a DocumentView with debug logging.
type LoggingView struct {
	next   pmcompare.DocumentView
	logger *slog.Logger
}

// NewLoggingView creates a new LoggingView.
func NewLoggingView(next pmcompare.DocumentView, logger *slog.Logger) *LoggingView {
	return &LoggingView{next: next, logger: logger}
}

// Text logs the extracted text size and delegates to the wrapped view.
func (v *LoggingView) Text(ctx context.Context) (text string, err error) {
	defer func(begin time.Time) {
		v.logger.Info("extract text",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return v.next.Text(ctx)
}

// FindAndHighlight logs the search outcome and delegates to the wrapped view.
func (v *LoggingView) FindAndHighlight(ctx context.Context, text string) (found bool, err error) {
	defer func(begin time.Time) {
		v.logger.Info("highlight",
			"text", text,
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return v.next.FindAndHighlight(ctx, text)
}

// HTML delegates to the wrapped view when it can render HTML.
func (v *LoggingView) HTML(ctx context.Context) (string, error) {
	hv, ok := v.next.(pmcompare.HTMLView)
	if !ok {
		return "", pmcompare.Errorf(pmcompare.EINTERNAL, "view cannot render HTML")
	}
	return hv.HTML(ctx)
}

// Ensure LoggingViewFactory implements pmcompare.ViewFactory.
var _ pmcompare.ViewFactory = (*LoggingViewFactory)(nil)

// LoggingViewFactory wraps a ViewFactory so that every view it creates logs.
type LoggingViewFactory struct {
	next   pmcompare.ViewFactory
	logger *slog.Logger
}

// NewLoggingViewFactory creates a new LoggingViewFactory.
func NewLoggingViewFactory(next pmcompare.ViewFactory, logger *slog.Logger) *LoggingViewFactory {
	return &LoggingViewFactory{next: next, logger: logger}
}

// NewView logs the load and wraps the resulting view in a LoggingView.
func (f *LoggingViewFactory) NewView(ctx context.Context, html string) (view pmcompare.DocumentView, err error) {
	defer func(begin time.Time) {
		f.logger.Info("load view",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	view, err = f.next.NewView(ctx, html)
	if err != nil {
		return nil, err
	}
	return NewLoggingView(view, f.logger), nil
}
