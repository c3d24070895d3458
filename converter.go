package pmcompare

// Converter converts chapter HTML to Markdown for terminal reading.
type Converter interface {
	// Convert transforms chapter XHTML into Markdown. Highlight markers
	// (see HighlightClass) are rendered with strong emphasis.
	Convert(html string) (string, error)
}
