package pmcompare

import (
	"fmt"
	"io"
)

// Section headings and empty-state placeholders for presented results.
const (
	SimilaritiesHeading     = "Similar Concepts"
	DifferencesHeading      = "Unique Points"
	SimilaritiesPlaceholder = "No direct similarities found on these pages."
	DifferencesPlaceholder  = "No unique points found on these pages."
)

// Presenter displays the results of a comparison run.
// Implementations receive a fully computed result set, never partial updates.
type Presenter interface {
	Present(results Results)
}

// ResultRow is a single displayed row. Placeholder rows carry no result
// and cannot be selected.
type ResultRow struct {
	Result      *ComparisonResult
	Placeholder string
}

// Selectable reports whether the row refers to a result.
func (r ResultRow) Selectable() bool {
	return r.Result != nil
}

// ResultSection is a labeled group of rows.
type ResultSection struct {
	Heading string
	Rows    []ResultRow
}

// Sections groups results into the similarities and differences sections.
// An empty group yields a single placeholder row rather than no rows.
func Sections(results Results) []ResultSection {
	return []ResultSection{
		buildSection(SimilaritiesHeading, SimilaritiesPlaceholder, results.Similarities),
		buildSection(DifferencesHeading, DifferencesPlaceholder, results.Differences),
	}
}

func buildSection(heading, placeholder string, items []ComparisonResult) ResultSection {
	section := ResultSection{Heading: heading}
	if len(items) == 0 {
		section.Rows = []ResultRow{{Placeholder: placeholder}}
		return section
	}
	section.Rows = make([]ResultRow, 0, len(items))
	for i := range items {
		section.Rows = append(section.Rows, ResultRow{Result: &items[i]})
	}
	return section
}

// Ensure WriterPresenter implements Presenter at compile time.
var _ Presenter = (*WriterPresenter)(nil)

// WriterPresenter writes formatted results to an io.Writer.
type WriterPresenter struct {
	w io.Writer
}

// NewWriterPresenter creates a new WriterPresenter.
func NewWriterPresenter(w io.Writer) *WriterPresenter {
	return &WriterPresenter{w: w}
}

// Present writes results using FormatResults.
func (p *WriterPresenter) Present(results Results) {
	fmt.Fprintln(p.w, FormatResults(results))
}
