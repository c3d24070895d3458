package main

import (
	"fmt"

	"github.com/fwojciec/pmcompare"
)

// Run executes the chapters command.
func (c *ChaptersCmd) Run(deps *Dependencies) error {
	std, err := findStandard(deps, c.Name)
	if err != nil {
		return err
	}

	chapters, err := deps.Chapters.FindChapters(deps.Ctx, pmcompare.ChapterFilter{StandardID: &std.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	if len(chapters) == 0 {
		fmt.Fprintf(deps.Stderr, "error: standard %q has no chapters. To re-import, run 'pmcompare add %s <epub> --force'.\n", c.Name, c.Name)
		return pmcompare.Errorf(pmcompare.ENOTFOUND, "standard %q has no chapters", c.Name)
	}

	fmt.Fprintf(deps.Stdout, "Chapters of %s (%d total):\n\n", std.Title, len(chapters))
	for i, ch := range chapters {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n", i+1, ch.DisplayTitle())
	}

	return nil
}
