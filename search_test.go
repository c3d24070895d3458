package pmcompare_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pmcompare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchChapters() []*pmcompare.Chapter {
	return []*pmcompare.Chapter{
		{Title: "Introduction", Text: "Introduction\nThis manual explains the method.", Position: 0},
		{Title: "Risk Theme", Text: "Risk Theme\nA risk register records threats.", Position: 1},
		{Href: "OEBPS/appendix.xhtml", Text: "Glossary\nRisk appetite: the amount of risk accepted.", Position: 2},
	}
}

func TestSearchChapters(t *testing.T) {
	t.Parallel()

	t.Run("matches titles case-insensitively", func(t *testing.T) {
		t.Parallel()

		hits := pmcompare.SearchChapters(searchChapters(), "RISK", false)

		require.Len(t, hits, 1)
		assert.Equal(t, pmcompare.ChapterHit{Number: 2, Title: "Risk Theme", Snippet: "Found in: Risk Theme"}, hits[0])
	})

	t.Run("searches chapter text when asked", func(t *testing.T) {
		t.Parallel()

		hits := pmcompare.SearchChapters(searchChapters(), "risk", true)

		require.Len(t, hits, 2)
		assert.Equal(t, "Found in: Risk Theme", hits[0].Snippet, "title matches take precedence")
		assert.Equal(t, 3, hits[1].Number)
		assert.Equal(t, "OEBPS/appendix.xhtml", hits[1].Title)
		assert.Equal(t, "Found in text: Glossary Risk appetite: the amount of risk accepted.", hits[1].Snippet)
	})

	t.Run("trims long text around the match", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 100) + " budget " + strings.Repeat("b", 100)
		hits := pmcompare.SearchChapters([]*pmcompare.Chapter{{Title: "Costs", Text: text}}, "BUDGET", true)

		require.Len(t, hits, 1)
		assert.Equal(t, "Found in text: ..."+strings.Repeat("a", 39)+" budget "+strings.Repeat("b", 39)+"...", hits[0].Snippet)
	})

	t.Run("returns nothing without matches", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pmcompare.SearchChapters(searchChapters(), "procurement", true))
	})

	t.Run("returns nothing for a blank query", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pmcompare.SearchChapters(searchChapters(), "  ", true))
	})
}
