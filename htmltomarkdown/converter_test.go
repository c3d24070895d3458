package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pmcompare"
	"github.com/fwojciec/pmcompare/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pmcompare.Converter at compile time.
var _ pmcompare.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Principles</h1><h2>Continued business justification</h2><p>A project must remain desirable.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Principles")
		assert.Contains(t, md, "## Continued business justification")
		assert.Contains(t, md, "A project must remain desirable.")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>Business case</li><li>Organization</li></ul><ol><li>Starting up</li><li>Initiating</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Business case")
		assert.Contains(t, md, "- Organization")
		assert.Contains(t, md, "1. Starting up")
		assert.Contains(t, md, "2. Initiating")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table>
<thead><tr><th>Role</th><th>Responsibility</th></tr></thead>
<tbody><tr><td>Executive</td><td>Business case</td></tr></tbody>
</table>`)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Role")
		assert.Contains(t, md, "Executive")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts bold, italic and blockquotes", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Bold</strong> and <em>italic</em> text.</p><blockquote><p>Tailor to suit the project.</p></blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
		assert.Contains(t, md, "> Tailor to suit the project.")
	})

	t.Run("renders highlight markers as strong emphasis", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Keep a <mark class="pm-highlight" id="pm-highlight">risk</mark> register.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Keep a **risk** register.", md)
	})

	t.Run("leaves other marks alone", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Keep a <mark>risk</mark> register.</p>`)

		require.NoError(t, err)
		assert.NotContains(t, md, "**risk**")
		assert.Contains(t, md, "risk")
	})

	t.Run("drops the document head", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<html><head><title>Chapter 1</title><style>p {}</style></head><body><p>Body text.</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Body text.", md)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, pmcompare.EINVALID, pmcompare.ErrorCode(err))
	})
}
