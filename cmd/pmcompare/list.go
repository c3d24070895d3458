package main

import (
	"fmt"

	"github.com/fwojciec/pmcompare"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	standards, err := deps.Standards.FindStandards(deps.Ctx, pmcompare.StandardFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	if len(standards) == 0 {
		fmt.Fprintln(deps.Stdout, "No standards found. Use 'pmcompare add' to import one.")
		return nil
	}

	for _, s := range standards {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.Name, s.Title, s.FilePath)
	}

	return nil
}
