package main

import (
	"fmt"

	"github.com/fwojciec/pmcompare"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	std, err := findStandard(deps, c.Name)
	if err != nil {
		return err
	}

	chapters, err := deps.Chapters.FindChapters(deps.Ctx, pmcompare.ChapterFilter{StandardID: &std.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	hits := pmcompare.SearchChapters(chapters, c.Query, c.Text)
	if len(hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No matches found for %q in %s.\n", c.Query, std.Title)
		return nil
	}

	for _, h := range hits {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", h.Number, h.Title, h.Snippet)
	}
	fmt.Fprintf(deps.Stdout, "\nUse 'pmcompare read %s <number>' to open a chapter.\n", std.Name)
	return nil
}
