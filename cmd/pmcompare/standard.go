package main

import (
	"fmt"

	"github.com/fwojciec/pmcompare"
)

// findStandard looks up a standard by name, reporting errors to stderr.
func findStandard(deps *Dependencies, name string) (*pmcompare.Standard, error) {
	standards, err := deps.Standards.FindStandards(deps.Ctx, pmcompare.StandardFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return nil, err
	}

	if len(standards) == 0 {
		fmt.Fprintf(deps.Stderr, "error: standard %q not found. Use 'pmcompare list' to see imported standards.\n", name)
		return nil, pmcompare.Errorf(pmcompare.ENOTFOUND, "standard %q not found", name)
	}

	return standards[0], nil
}

// findChapter looks up the 1-based chapter number of a standard, reporting
// errors to stderr.
func findChapter(deps *Dependencies, std *pmcompare.Standard, number int) (*pmcompare.Chapter, error) {
	if number < 1 {
		fmt.Fprintf(deps.Stderr, "error: chapter number must be 1 or greater\n")
		return nil, pmcompare.Errorf(pmcompare.EINVALID, "chapter number must be 1 or greater")
	}

	position := number - 1
	chapters, err := deps.Chapters.FindChapters(deps.Ctx, pmcompare.ChapterFilter{
		StandardID: &std.ID,
		Position:   &position,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return nil, err
	}

	if len(chapters) == 0 {
		fmt.Fprintf(deps.Stderr, "error: %s has no chapter %d. Use 'pmcompare chapters %s' to see its chapters.\n", std.Name, number, std.Name)
		return nil, pmcompare.Errorf(pmcompare.ENOTFOUND, "%s has no chapter %d", std.Name, number)
	}

	return chapters[0], nil
}
