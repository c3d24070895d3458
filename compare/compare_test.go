package compare_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pmcompare"
	"github.com/fwojciec/pmcompare/compare"
	"github.com/fwojciec/pmcompare/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTaxonomy() pmcompare.Taxonomy {
	return pmcompare.Taxonomy{Topics: []pmcompare.Topic{
		{Name: "Risk Management", Keywords: []string{"risk", "threat", "opportunity", "issue"}},
		{Name: "Schedule Management", Keywords: []string{"gantt", "milestone"}},
		{Name: "Cost Management", Keywords: []string{"cost", "budget"}},
	}}
}

func textView(text string) *mock.DocumentView {
	return &mock.DocumentView{
		TextFn: func(context.Context) (string, error) { return text, nil },
	}
}

func failingView(err error) *mock.DocumentView {
	return &mock.DocumentView{
		TextFn: func(context.Context) (string, error) { return "", err },
	}
}

func TestComparer_Compare(t *testing.T) {
	t.Parallel()

	t.Run("classifies extracted text case-insensitively", func(t *testing.T) {
		t.Parallel()

		c := compare.NewComparer(testTaxonomy())

		results := c.Compare(context.Background(),
			compare.Document{Title: "PMBOK 7th Edition", View: textView("We must manage the relevant Threat. Each Milestone is tracked.")},
			compare.Document{Title: "PRINCE2", View: textView("The project Risk Register")},
		)

		require.Len(t, results.Similarities, 1)
		assert.Equal(t, "Risk Management", results.Similarities[0].Topic)
		assert.Equal(t, "Both standards discuss topics related to 'threat'", results.Similarities[0].Snippet)
		assert.Equal(t, "PMBOK 7th Edition & PRINCE2", results.Similarities[0].SourceLabel)

		require.Len(t, results.Differences, 1)
		assert.Equal(t, "Schedule Management", results.Differences[0].Topic)
		assert.Equal(t, pmcompare.SideLeft, results.Differences[0].Side)
	})

	t.Run("treats extraction failure as no evidence", func(t *testing.T) {
		t.Parallel()

		c := compare.NewComparer(testTaxonomy())

		results := c.Compare(context.Background(),
			compare.Document{Title: "PMBOK 7th Edition", View: failingView(errors.New("no content loaded"))},
			compare.Document{Title: "PRINCE2", View: textView("stage budget")},
		)

		assert.Empty(t, results.Similarities)
		require.Len(t, results.Differences, 1)
		assert.Equal(t, "Cost Management", results.Differences[0].Topic)
		assert.Equal(t, pmcompare.SideRight, results.Differences[0].Side)
		assert.Equal(t, "PRINCE2", results.Differences[0].SourceLabel)
	})

	t.Run("treats missing view as no evidence", func(t *testing.T) {
		t.Parallel()

		c := compare.NewComparer(testTaxonomy())

		results := c.Compare(context.Background(),
			compare.Document{Title: "PMBOK 7th Edition"},
			compare.Document{Title: "PRINCE2"},
		)

		assert.Equal(t, 0, results.Len())
	})

	t.Run("uses word-boundary matching when configured", func(t *testing.T) {
		t.Parallel()

		left := compare.Document{Title: "Left", View: textView("project costs")}
		right := compare.Document{Title: "Right", View: textView("")}

		substring := compare.NewComparer(testTaxonomy())
		assert.Equal(t, 1, substring.Compare(context.Background(), left, right).Len())

		c := compare.NewComparer(testTaxonomy())
		c.Contains = pmcompare.ContainsWord

		results := c.Compare(context.Background(), left, right)

		assert.Equal(t, 0, results.Len())
	})

	t.Run("is idempotent on unchanged text", func(t *testing.T) {
		t.Parallel()

		c := compare.NewComparer(testTaxonomy())
		left := compare.Document{Title: "Left", View: textView("risk budget gantt")}
		right := compare.Document{Title: "Right", View: textView("threat cost")}

		first := c.Compare(context.Background(), left, right)
		second := c.Compare(context.Background(), left, right)

		assert.Equal(t, first, second)
	})
}

func TestNewComparer_PanicsOnInvalidTaxonomy(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		compare.NewComparer(pmcompare.Taxonomy{Topics: []pmcompare.Topic{{Name: "Risk"}}})
	})
}

func TestExtractVisibleText(t *testing.T) {
	t.Parallel()

	t.Run("returns view text with case preserved", func(t *testing.T) {
		t.Parallel()

		text := compare.ExtractVisibleText(context.Background(), textView("Risk Register"), nil)

		assert.Equal(t, "Risk Register", text)
	})

	t.Run("returns empty string on error", func(t *testing.T) {
		t.Parallel()

		text := compare.ExtractVisibleText(context.Background(), failingView(errors.New("boom")), nil)

		assert.Empty(t, text)
	})

	t.Run("returns empty string on cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		text := compare.ExtractVisibleText(ctx, textView("Risk"), nil)

		assert.Empty(t, text)
	})
}
