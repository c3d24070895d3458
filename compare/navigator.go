package compare

import (
	"context"
	"log/slog"

	"github.com/fwojciec/pmcompare"
)

// Navigator deep-links a comparison result back into the document it came
// from by highlighting the topic's first keyword.
type Navigator struct {
	Taxonomy pmcompare.Taxonomy
	Left     pmcompare.DocumentView
	Right    pmcompare.DocumentView
	Logger   *slog.Logger
}

// Navigate highlights the first keyword of result's topic in the view on
// result's side. Navigation is best effort: an unknown topic, a missing view,
// a keyword that is no longer on the page, or a view error are all silent
// no-ops. Returns true if a highlight was applied.
func (n *Navigator) Navigate(ctx context.Context, result pmcompare.ComparisonResult) bool {
	logger := n.Logger
	if logger == nil {
		logger = discardLogger()
	}

	keyword := n.Taxonomy.FirstKeyword(result.Topic)
	if keyword == "" {
		logger.Debug("deep link skipped: unknown topic", "topic", result.Topic)
		return false
	}

	view := n.view(result.Side)
	if view == nil {
		logger.Debug("deep link skipped: no view", "side", result.Side.String())
		return false
	}

	found, err := view.FindAndHighlight(ctx, keyword)
	if err != nil {
		logger.Debug("deep link failed", "topic", result.Topic, "keyword", keyword, "err", err)
		return false
	}
	if !found {
		logger.Debug("deep link keyword not on page", "topic", result.Topic, "keyword", keyword)
	}
	return found
}

func (n *Navigator) view(side pmcompare.Side) pmcompare.DocumentView {
	switch side {
	case pmcompare.SideLeft:
		return n.Left
	case pmcompare.SideRight:
		return n.Right
	default:
		return nil
	}
}
