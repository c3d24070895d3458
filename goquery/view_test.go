package goquery_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/pmcompare"
	"github.com/fwojciec/pmcompare/compare"
	"github.com/fwojciec/pmcompare/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure View implements pmcompare.DocumentView.
var _ pmcompare.DocumentView = (*goquery.View)(nil)

const chapterHTML = `<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Themes</title><style>p { color: red; }</style></head>
<body>
  <h1>Principles and Themes</h1>
  <p>Every project has a <em>Risk</em> register.</p>
  <p>The business case   is reviewed
     at each stage.</p>
  <script>var risk = "hidden";</script>
  <ul><li>Quality</li><li>Change</li></ul>
</body>
</html>`

func TestView_Text(t *testing.T) {
	t.Parallel()

	t.Run("extracts block-aware body text", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(chapterHTML)
		require.NoError(t, err)

		text, err := view.Text(context.Background())

		require.NoError(t, err)
		expected := "Principles and Themes\n" +
			"Every project has a Risk register.\n" +
			"The business case is reviewed at each stage.\n" +
			"Quality\n" +
			"Change"
		assert.Equal(t, expected, text)
	})

	t.Run("skips script and style content", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(chapterHTML)
		require.NoError(t, err)

		text, err := view.Text(context.Background())

		require.NoError(t, err)
		assert.NotContains(t, text, "hidden")
		assert.NotContains(t, text, "color")
	})

	t.Run("returns empty text for empty body", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView("")
		require.NoError(t, err)

		text, err := view.Text(context.Background())

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("returns error on cancelled context", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(chapterHTML)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = view.Text(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestView_FindAndHighlight(t *testing.T) {
	t.Parallel()

	t.Run("wraps first occurrence case-insensitively", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(chapterHTML)
		require.NoError(t, err)

		found, err := view.FindAndHighlight(context.Background(), "risk")
		require.NoError(t, err)
		assert.True(t, found)

		out, err := view.HTML(context.Background())
		require.NoError(t, err)
		assert.Contains(t, out, `<em><mark class="pm-highlight" id="pm-highlight">Risk</mark></em>`)
		assert.Equal(t, 1, view.Highlights())
	})

	t.Run("splits text around the match", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(`<p>the business case is reviewed</p>`)
		require.NoError(t, err)

		found, err := view.FindAndHighlight(context.Background(), "business case")
		require.NoError(t, err)
		require.True(t, found)

		out, err := view.HTML(context.Background())
		require.NoError(t, err)
		assert.Contains(t, out, `<p>the <mark class="pm-highlight" id="pm-highlight">business case</mark> is reviewed</p>`)
	})

	t.Run("wraps the whole match when case folding changes width", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView("<p>a RIS\u212a log</p>")
		require.NoError(t, err)

		found, err := view.FindAndHighlight(context.Background(), "risk")
		require.NoError(t, err)
		require.True(t, found)

		out, err := view.HTML(context.Background())
		require.NoError(t, err)
		assert.Contains(t, out, "<p>a <mark class=\"pm-highlight\" id=\"pm-highlight\">RIS\u212a</mark> log</p>")
	})

	t.Run("does not change text content", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(chapterHTML)
		require.NoError(t, err)
		before, err := view.Text(context.Background())
		require.NoError(t, err)

		_, err = view.FindAndHighlight(context.Background(), "business")
		require.NoError(t, err)

		after, err := view.Text(context.Background())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("returns false when text is not found", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(chapterHTML)
		require.NoError(t, err)

		found, err := view.FindAndHighlight(context.Background(), "procurement")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 0, view.Highlights())
	})

	t.Run("ignores matches inside scripts", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(`<body><script>var hidden = 1;</script><p>visible</p></body>`)
		require.NoError(t, err)

		found, err := view.FindAndHighlight(context.Background(), "hidden")

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("repeated highlights leave exactly one marker", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(chapterHTML)
		require.NoError(t, err)

		for _, kw := range []string{"risk", "business case", "quality", "risk"} {
			found, err := view.FindAndHighlight(context.Background(), kw)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, 1, view.Highlights())
		}
	})

	t.Run("removes prior marker even when new text is not found", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(chapterHTML)
		require.NoError(t, err)

		_, err = view.FindAndHighlight(context.Background(), "risk")
		require.NoError(t, err)
		found, err := view.FindAndHighlight(context.Background(), "procurement")
		require.NoError(t, err)

		assert.False(t, found)
		assert.Equal(t, 0, view.Highlights())
	})

	t.Run("restores original markup when marker is removed", func(t *testing.T) {
		t.Parallel()

		view, err := goquery.NewView(`<p>the business case is reviewed</p>`)
		require.NoError(t, err)
		original, err := view.HTML(context.Background())
		require.NoError(t, err)

		_, err = view.FindAndHighlight(context.Background(), "case")
		require.NoError(t, err)
		_, err = view.FindAndHighlight(context.Background(), "absent")
		require.NoError(t, err)

		restored, err := view.HTML(context.Background())
		require.NoError(t, err)
		assert.Equal(t, original, restored)
	})
}

func TestView_NavigatorDeepLink(t *testing.T) {
	t.Parallel()

	left, err := goquery.NewView(`<p>Manage each threat and every risk. Track the budget.</p>`)
	require.NoError(t, err)

	nav := &compare.Navigator{
		Taxonomy: pmcompare.Taxonomy{Topics: []pmcompare.Topic{
			{Name: "Risk Management", Keywords: []string{"risk", "threat"}},
			{Name: "Cost Management", Keywords: []string{"budget", "cost"}},
		}},
		Left: left,
	}

	assert.True(t, nav.Navigate(context.Background(), pmcompare.ComparisonResult{Topic: "Risk Management"}))
	assert.True(t, nav.Navigate(context.Background(), pmcompare.ComparisonResult{Topic: "Cost Management"}))

	out, err := left.HTML(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "<mark"))
	assert.Contains(t, out, `<mark class="pm-highlight" id="pm-highlight">budget</mark>`)
}

func TestChapterTitle(t *testing.T) {
	t.Parallel()

	t.Run("prefers first heading", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Principles and Themes", goquery.ChapterTitle(chapterHTML))
	})

	t.Run("falls back to document title", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Cover", goquery.ChapterTitle(`<html><head><title> Cover </title></head><body><p>x</p></body></html>`))
	})

	t.Run("returns empty string without headings", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.ChapterTitle(`<p>no title</p>`))
	})
}

func TestViewFactory_NewView(t *testing.T) {
	t.Parallel()

	view, err := goquery.NewViewFactory().NewView(context.Background(), `<p>Stakeholder</p>`)
	require.NoError(t, err)

	text, err := view.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Stakeholder", text)
}
