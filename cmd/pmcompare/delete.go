package main

import (
	"fmt"

	"github.com/fwojciec/pmcompare"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pmcompare.Errorf(pmcompare.EINVALID, "use --force to confirm deletion")
	}

	std, err := findStandard(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Standards.DeleteStandard(deps.Ctx, std.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted standard %q\n", std.Name)
	return nil
}
