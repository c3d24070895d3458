package main

import (
	"fmt"

	"github.com/fwojciec/pmcompare"
	"github.com/fwojciec/pmcompare/guidance"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	typ, err := guidance.ParseProjectType(c.Type)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	scale, err := guidance.ParseProjectScale(c.Scale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	std, err := c.standard(deps)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, guidance.Generate(typ, scale, std))
	return nil
}

// standard resolves the preferred standard from the catalogue, then from
// the imported library.
func (c *GenerateCmd) standard(deps *Dependencies) (pmcompare.CatalogueEntry, error) {
	if title := pmcompare.CatalogueTitle(c.Standard); title != "" {
		return pmcompare.CatalogueEntry{Name: c.Standard, Title: title}, nil
	}

	std, err := findStandard(deps, c.Standard)
	if err != nil {
		return pmcompare.CatalogueEntry{}, err
	}
	return pmcompare.CatalogueEntry{Name: std.Name, Title: std.Title}, nil
}
