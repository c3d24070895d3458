package main

import (
	"fmt"

	"github.com/fwojciec/pmcompare"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	std, err := findStandard(deps, c.Name)
	if err != nil {
		return err
	}

	ch, err := findChapter(deps, std, c.Chapter)
	if err != nil {
		return err
	}

	md, err := deps.Converter.Convert(ch.Content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: %s\n\n%s\n", std.Title, ch.DisplayTitle(), md)
	return nil
}
