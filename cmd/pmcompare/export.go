package main

import (
	"fmt"

	"github.com/fwojciec/pmcompare"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	std, err := findStandard(deps, c.Name)
	if err != nil {
		return err
	}

	chapters, err := deps.Chapters.FindChapters(deps.Ctx, pmcompare.ChapterFilter{StandardID: &std.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	for i, ch := range chapters {
		md, err := deps.Converter.Convert(ch.Content)
		if err == nil {
			err = deps.Store.Save(deps.Ctx, &pmcompare.ExportedChapter{
				Standard: std.Title,
				Number:   i + 1,
				Title:    ch.DisplayTitle(),
				Markdown: md,
			})
		}
		if err != nil {
			_ = deps.Store.Abort()
			fmt.Fprintf(deps.Stderr, "error exporting chapter %d: %s\n", i+1, pmcompare.ErrorMessage(err))
			return err
		}
	}

	if err := deps.Store.Commit(); err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d chapters of %s to %s\n", len(chapters), std.Title, c.Dir)
	return nil
}
