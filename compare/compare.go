// Package compare runs document comparisons and deep-links their results
// back into the compared documents.
package compare

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/pmcompare"
	"golang.org/x/sync/errgroup"
)

// Document is one side of a comparison: a display title and a loaded view.
type Document struct {
	Title string
	View  pmcompare.DocumentView
}

// Comparer compares the loaded text of two documents against a taxonomy.
type Comparer struct {
	Taxonomy pmcompare.Taxonomy

	// Contains decides keyword matches. Defaults to pmcompare.ContainsKeyword.
	Contains pmcompare.KeywordFunc

	// Logger receives extraction failures. Defaults to discarding.
	Logger *slog.Logger
}

// NewComparer creates a Comparer. It panics if the taxonomy is invalid.
func NewComparer(taxonomy pmcompare.Taxonomy) *Comparer {
	return &Comparer{Taxonomy: pmcompare.MustTaxonomy(taxonomy)}
}

// Compare extracts the text of both documents concurrently, then matches and
// classifies it. A document whose text cannot be extracted counts as having
// no evidence. The result set is complete when Compare returns.
func (c *Comparer) Compare(ctx context.Context, left, right Document) pmcompare.Results {
	logger := c.logger()

	var leftText, rightText string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		leftText = ExtractVisibleText(gctx, left.View, logger.With("side", pmcompare.SideLeft.String()))
		return nil
	})
	g.Go(func() error {
		rightText = ExtractVisibleText(gctx, right.View, logger.With("side", pmcompare.SideRight.String()))
		return nil
	})
	_ = g.Wait()

	matches := pmcompare.Match(c.Taxonomy, strings.ToLower(leftText), strings.ToLower(rightText), c.Contains)
	results := pmcompare.Classify(matches, left.Title, right.Title)

	logger.Debug("comparison",
		"left", left.Title,
		"right", right.Title,
		"similarities", len(results.Similarities),
		"differences", len(results.Differences),
	)
	return results
}

func (c *Comparer) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discardLogger()
}

// ExtractVisibleText returns the loaded text of view. Every failure (no view,
// extraction error, cancelled context) yields "" so callers treat it as no
// evidence rather than an error.
func ExtractVisibleText(ctx context.Context, view pmcompare.DocumentView, logger *slog.Logger) string {
	if view == nil {
		return ""
	}
	if err := ctx.Err(); err != nil {
		return ""
	}
	text, err := view.Text(ctx)
	if err != nil {
		if logger != nil {
			logger.Warn("text extraction failed", "err", err)
		}
		return ""
	}
	return text
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
