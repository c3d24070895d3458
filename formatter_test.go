package pmcompare_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/pmcompare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections(t *testing.T) {
	t.Parallel()

	t.Run("shows placeholders when no results", func(t *testing.T) {
		t.Parallel()

		sections := pmcompare.Sections(pmcompare.Results{})

		require.Len(t, sections, 2)
		assert.Equal(t, pmcompare.SimilaritiesHeading, sections[0].Heading)
		require.Len(t, sections[0].Rows, 1)
		assert.False(t, sections[0].Rows[0].Selectable())
		assert.Equal(t, pmcompare.SimilaritiesPlaceholder, sections[0].Rows[0].Placeholder)

		assert.Equal(t, pmcompare.DifferencesHeading, sections[1].Heading)
		require.Len(t, sections[1].Rows, 1)
		assert.Equal(t, pmcompare.DifferencesPlaceholder, sections[1].Rows[0].Placeholder)
	})

	t.Run("one row per result", func(t *testing.T) {
		t.Parallel()

		sections := pmcompare.Sections(pmcompare.Results{
			Differences: []pmcompare.ComparisonResult{{Topic: "Cost"}, {Topic: "Scope"}},
		})

		require.Len(t, sections[1].Rows, 2)
		assert.True(t, sections[1].Rows[0].Selectable())
		assert.Equal(t, "Scope", sections[1].Rows[1].Result.Topic)
	})
}

func TestFormatResults(t *testing.T) {
	t.Parallel()

	t.Run("formats empty results with both placeholders", func(t *testing.T) {
		t.Parallel()

		result := pmcompare.FormatResults(pmcompare.Results{})

		expected := "## Similar Concepts\n   No direct similarities found on these pages.\n\n" +
			"## Unique Points\n   No unique points found on these pages."
		assert.Equal(t, expected, result)
	})

	t.Run("numbers rows across sections", func(t *testing.T) {
		t.Parallel()

		result := pmcompare.FormatResults(pmcompare.Results{
			Similarities: []pmcompare.ComparisonResult{{
				Topic:       "Risk Management",
				Snippet:     "Both standards discuss topics related to 'risk'",
				SourceLabel: "PMBOK 7th Edition & PRINCE2",
			}},
			Differences: []pmcompare.ComparisonResult{{
				Topic:       "Schedule Management",
				Snippet:     "Mentions 'milestone', a key aspect of this topic",
				SourceLabel: "PMBOK 7th Edition",
			}},
		})

		expected := "## Similar Concepts\n" +
			"1. Risk Management\n   Found in: PMBOK 7th Edition & PRINCE2\n   Both standards discuss topics related to 'risk'\n\n" +
			"## Unique Points\n" +
			"2. Schedule Management\n   Found in: PMBOK 7th Edition\n   Mentions 'milestone', a key aspect of this topic"
		assert.Equal(t, expected, result)
	})
}

func TestWriterPresenter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pmcompare.NewWriterPresenter(&buf).Present(pmcompare.Results{})

	assert.Contains(t, buf.String(), pmcompare.SimilaritiesPlaceholder)
	assert.Contains(t, buf.String(), pmcompare.DifferencesPlaceholder)
}
