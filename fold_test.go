package pmcompare_test

import (
	"testing"

	"github.com/fwojciec/pmcompare"
	"github.com/stretchr/testify/assert"
)

func TestIndexFold(t *testing.T) {
	t.Parallel()

	t.Run("ignores ASCII case", func(t *testing.T) {
		t.Parallel()

		start, end := pmcompare.IndexFold("Manage RISK early", "risk")
		assert.Equal(t, 7, start)
		assert.Equal(t, 11, end)
	})

	t.Run("spans the matched bytes when widths differ", func(t *testing.T) {
		t.Parallel()

		// The Kelvin sign folds to "k" but is three bytes long.
		s := "risK register"
		start, end := pmcompare.IndexFold(s, "risk")
		assert.Equal(t, 0, start)
		assert.Equal(t, 6, end)
		assert.Equal(t, "risK", s[start:end])
	})

	t.Run("matches non-ASCII letters in either case", func(t *testing.T) {
		t.Parallel()

		start, end := pmcompare.IndexFold("Die QUALIT\u00c4T z\u00e4hlt", "qualit\u00e4t")
		assert.Equal(t, 4, start)
		assert.Equal(t, 13, end)
	})

	t.Run("does not match expanding folds", func(t *testing.T) {
		t.Parallel()

		start, _ := pmcompare.IndexFold("\u0130SSUE", "issue")
		assert.Equal(t, -1, start)
	})

	t.Run("reports no match", func(t *testing.T) {
		t.Parallel()

		start, end := pmcompare.IndexFold("budget", "cost")
		assert.Equal(t, -1, start)
		assert.Equal(t, -1, end)
		assert.False(t, pmcompare.ContainsFold("anything", ""))
		assert.True(t, pmcompare.ContainsFold("The Business Case", "business case"))
	})
}
