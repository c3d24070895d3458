package guidance_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pmcompare"
	"github.com/fwojciec/pmcompare/guidance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pmbok    = pmcompare.CatalogueEntry{Name: "PMBOK", Title: "PMBOK 7th Edition"}
	prince2  = pmcompare.CatalogueEntry{Name: "PRINCE2", Title: "PRINCE2"}
	iso21502 = pmcompare.CatalogueEntry{Name: "ISO21502", Title: "ISO 21502"}
)

func TestParseProjectType(t *testing.T) {
	t.Parallel()

	t.Run("accepts keys case-insensitively", func(t *testing.T) {
		t.Parallel()

		typ, err := guidance.ParseProjectType(" Research ")
		require.NoError(t, err)
		assert.Equal(t, guidance.Research, typ)
		assert.Equal(t, "Research Project", typ.Label())
	})

	t.Run("returns EINVALID for unknown types", func(t *testing.T) {
		t.Parallel()

		_, err := guidance.ParseProjectType("gardening")
		require.Error(t, err)
		assert.Equal(t, pmcompare.EINVALID, pmcompare.ErrorCode(err))
		assert.Contains(t, pmcompare.ErrorMessage(err), "software, construction, research, infrastructure, marketing")
	})
}

func TestParseProjectScale(t *testing.T) {
	t.Parallel()

	t.Run("accepts keys", func(t *testing.T) {
		t.Parallel()

		scale, err := guidance.ParseProjectScale("large")
		require.NoError(t, err)
		assert.Equal(t, guidance.Large, scale)
		assert.Equal(t, "Large (9+ months)", scale.Label())
	})

	t.Run("returns EINVALID for unknown scales", func(t *testing.T) {
		t.Parallel()

		_, err := guidance.ParseProjectScale("huge")
		require.Error(t, err)
		assert.Equal(t, pmcompare.EINVALID, pmcompare.ErrorCode(err))
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("starts with the summary header", func(t *testing.T) {
		t.Parallel()

		out := guidance.Generate(guidance.Software, guidance.Small, pmbok)

		assert.True(t, strings.HasPrefix(out, "RECOMMENDED PROCESS SUMMARY\n"))
		assert.Contains(t, out, "Project Type: Software Development\nProject Scale: Small (1-3 months)\nPreferred Standard: PMBOK 7th Edition")
	})

	t.Run("orders the sections", func(t *testing.T) {
		t.Parallel()

		out := guidance.Generate(guidance.Marketing, guidance.Medium, iso21502)

		headings := []string{"RECOMMENDED APPROACH", "PROJECT PHASES", "KEY ACTIVITIES", "KEY DELIVERABLES", "RECOMMENDATIONS"}
		last := -1
		for _, h := range headings {
			i := strings.Index(out, h)
			require.Greater(t, i, last, h)
			last = i
		}
		assert.True(t, strings.HasSuffix(out, "For detailed guidance, consult the full ISO 21502 documentation."))
	})

	t.Run("uses the exact approach template when one exists", func(t *testing.T) {
		t.Parallel()

		out := guidance.Generate(guidance.Software, guidance.Small, prince2)

		assert.Contains(t, out, "tailored PRINCE2 approach with simplified stage boundaries")
	})

	t.Run("applies construction rule for PMBOK at any scale", func(t *testing.T) {
		t.Parallel()

		out := guidance.Generate(guidance.Construction, guidance.Large, pmbok)

		assert.Contains(t, out, "PMBOK's traditional waterfall approach")
	})

	t.Run("applies large infrastructure rule for any standard", func(t *testing.T) {
		t.Parallel()

		out := guidance.Generate(guidance.Infrastructure, guidance.Large, prince2)

		assert.Contains(t, out, "Large infrastructure projects require rigorous planning")
	})

	t.Run("falls back to a generic approach", func(t *testing.T) {
		t.Parallel()

		out := guidance.Generate(guidance.Research, guidance.Medium, pmbok)

		assert.Contains(t, out, "This project will follow PMBOK 7th Edition principles adapted to the medium (3-9 months) research project context.")
	})

	t.Run("numbers phases and picks PRINCE2 software phases", func(t *testing.T) {
		t.Parallel()

		out := guidance.Generate(guidance.Software, guidance.Medium, prince2)

		assert.Contains(t, out, "1. Starting Up: Define project brief")
		assert.Contains(t, out, "4. Closing: User acceptance")
		assert.NotContains(t, out, "5. ")
	})

	t.Run("combines scale and type activities", func(t *testing.T) {
		t.Parallel()

		out := guidance.Generate(guidance.Construction, guidance.Large, prince2)

		assert.Contains(t, out, "- Formal gate reviews at phase transitions")
		assert.Contains(t, out, "- Daily site safety briefings")
		assert.Contains(t, out, "- As-built drawings and documentation")
	})

	t.Run("adds standard recommendations only for catalogue standards", func(t *testing.T) {
		t.Parallel()

		known := guidance.Generate(guidance.Software, guidance.Small, prince2)
		custom := guidance.Generate(guidance.Software, guidance.Small, pmcompare.CatalogueEntry{Name: "APM", Title: "APM Body of Knowledge"})

		assert.Contains(t, known, "- Use PRINCE2's 7 themes as health check throughout")
		assert.Contains(t, custom, "- Prioritize user feedback and iterative improvement")
		assert.NotContains(t, custom, "7 themes")
		assert.Contains(t, custom, "based on APM Body of Knowledge.")
	})

	t.Run("produces guidance for every combination", func(t *testing.T) {
		t.Parallel()

		for _, typ := range guidance.ProjectTypes() {
			for _, scale := range guidance.ProjectScales() {
				for _, std := range []pmcompare.CatalogueEntry{pmbok, prince2, iso21502} {
					out := guidance.Generate(typ, scale, std)
					assert.Contains(t, out, "1. ", "%s/%s/%s", typ, scale, std.Name)
					assert.Contains(t, out, "- ", "%s/%s/%s", typ, scale, std.Name)
				}
			}
		}
	})
}
