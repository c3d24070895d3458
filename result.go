package pmcompare

import "fmt"

// ComparisonResult is one classified outcome for one topic.
// Results are created fresh on every comparison run and never mutated.
type ComparisonResult struct {
	Topic       string `json:"topic"`
	Snippet     string `json:"snippet"`
	SourceLabel string `json:"sourceLabel"`

	// Side anchors the deep link: the left side for similarities,
	// the matching side for differences.
	Side Side `json:"side"`
}

// Results holds the output of one comparison run.
type Results struct {
	Similarities []ComparisonResult `json:"similarities"`
	Differences  []ComparisonResult `json:"differences"`
}

// Len returns the total number of results.
func (r Results) Len() int {
	return len(r.Similarities) + len(r.Differences)
}

// At returns the n-th result (1-based) counting similarities first, then
// differences. This is the numbering used by FormatResults.
func (r Results) At(n int) (ComparisonResult, bool) {
	if n < 1 || n > r.Len() {
		return ComparisonResult{}, false
	}
	if n <= len(r.Similarities) {
		return r.Similarities[n-1], true
	}
	return r.Differences[n-1-len(r.Similarities)], true
}

// Classify partitions topic matches into similarities (keywords found on
// both sides) and differences (keywords found on one side only). Topics
// with no matches on either side produce no result. When several keywords
// match on a side, the first declared keyword is reported.
func Classify(matches []TopicMatch, leftTitle, rightTitle string) Results {
	var results Results
	for _, m := range matches {
		switch {
		case len(m.Left) > 0 && len(m.Right) > 0:
			results.Similarities = append(results.Similarities, ComparisonResult{
				Topic:       m.Topic,
				Snippet:     fmt.Sprintf("Both standards discuss topics related to '%s'", m.Left[0]),
				SourceLabel: leftTitle + " & " + rightTitle,
				Side:        SideLeft,
			})
		case len(m.Left) > 0:
			results.Differences = append(results.Differences, differenceResult(m.Topic, m.Left[0], leftTitle, SideLeft))
		case len(m.Right) > 0:
			results.Differences = append(results.Differences, differenceResult(m.Topic, m.Right[0], rightTitle, SideRight))
		}
	}
	return results
}

func differenceResult(topic, keyword, title string, side Side) ComparisonResult {
	return ComparisonResult{
		Topic:       topic,
		Snippet:     fmt.Sprintf("Mentions '%s', a key aspect of this topic", keyword),
		SourceLabel: title,
		Side:        side,
	}
}
