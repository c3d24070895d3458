package pmcompare_test

import (
	"testing"

	"github.com/fwojciec/pmcompare"
	"github.com/stretchr/testify/assert"
)

func TestStandard_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires name", func(t *testing.T) {
		t.Parallel()

		err := (&pmcompare.Standard{Title: "PRINCE2"}).Validate()

		assert.Equal(t, pmcompare.EINVALID, pmcompare.ErrorCode(err))
	})

	t.Run("requires title", func(t *testing.T) {
		t.Parallel()

		err := (&pmcompare.Standard{Name: "PRINCE2"}).Validate()

		assert.Equal(t, pmcompare.EINVALID, pmcompare.ErrorCode(err))
	})
}

func TestChapter_DisplayTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Themes", (&pmcompare.Chapter{Title: "Themes", Href: "OEBPS/ch2.xhtml"}).DisplayTitle())
	assert.Equal(t, "OEBPS/ch2.xhtml", (&pmcompare.Chapter{Href: "OEBPS/ch2.xhtml"}).DisplayTitle())
}

func TestCatalogueTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PMBOK 7th Edition", pmcompare.CatalogueTitle("PMBOK"))
	assert.Equal(t, "ISO 21502", pmcompare.CatalogueTitle("ISO21502"))
	assert.Empty(t, pmcompare.CatalogueTitle("SCRUM"))
}
