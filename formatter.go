package pmcompare

import (
	"strconv"
	"strings"
)

// FormatResults formats comparison results for terminal display.
// Selectable rows are numbered in the order used by Results.At.
// Sections are separated by blank lines.
func FormatResults(results Results) string {
	sections := Sections(results)
	parts := make([]string, 0, len(sections))

	n := 0
	for _, section := range sections {
		var b strings.Builder
		b.WriteString("## ")
		b.WriteString(section.Heading)
		for _, row := range section.Rows {
			b.WriteString("\n")
			if !row.Selectable() {
				b.WriteString("   ")
				b.WriteString(row.Placeholder)
				continue
			}
			n++
			b.WriteString(strconv.Itoa(n))
			b.WriteString(". ")
			b.WriteString(row.Result.Topic)
			b.WriteString("\n   Found in: ")
			b.WriteString(row.Result.SourceLabel)
			b.WriteString("\n   ")
			b.WriteString(row.Result.Snippet)
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
