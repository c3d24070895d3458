package main

import (
	"fmt"

	"github.com/fwojciec/pmcompare"
	"github.com/fwojciec/pmcompare/compare"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	left, err := c.load(deps, c.Left, c.LeftChapter)
	if err != nil {
		return err
	}
	right, err := c.load(deps, c.Right, c.RightChapter)
	if err != nil {
		return err
	}

	comparer := compare.NewComparer(deps.Taxonomy)
	comparer.Logger = deps.Logger
	if c.WordBoundary {
		comparer.Contains = pmcompare.ContainsWord
	}

	var results pmcompare.Results
	presenter := pmcompare.NewWriterPresenter(deps.Stdout)
	compare.NewSession(comparer).Run(deps.Ctx, left.doc, right.doc, func(r pmcompare.Results) {
		results = r
		presenter.Present(r)
	})

	if c.Select == 0 {
		return nil
	}

	result, ok := results.At(c.Select)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: no result %d (%d results)\n", c.Select, results.Len())
		return pmcompare.Errorf(pmcompare.EINVALID, "no result %d", c.Select)
	}

	nav := &compare.Navigator{
		Taxonomy: deps.Taxonomy,
		Left:     left.doc.View,
		Right:    right.doc.View,
		Logger:   deps.Logger,
	}
	if !nav.Navigate(deps.Ctx, result) {
		return nil
	}

	target := left
	if result.Side == pmcompare.SideRight {
		target = right
	}
	return c.printHighlighted(deps, target)
}

// side is one loaded chapter of a comparison.
type side struct {
	standard *pmcompare.Standard
	chapter  *pmcompare.Chapter
	doc      compare.Document
}

func (c *CompareCmd) load(deps *Dependencies, name string, number int) (*side, error) {
	std, err := findStandard(deps, name)
	if err != nil {
		return nil, err
	}

	ch, err := findChapter(deps, std, number)
	if err != nil {
		return nil, err
	}

	view, err := deps.Views.NewView(deps.Ctx, ch.Content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return nil, err
	}

	return &side{
		standard: std,
		chapter:  ch,
		doc:      compare.Document{Title: std.Title, View: view},
	}, nil
}

func (c *CompareCmd) printHighlighted(deps *Dependencies, s *side) error {
	hv, ok := s.doc.View.(pmcompare.HTMLView)
	if !ok {
		return nil
	}

	content, err := hv.HTML(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\n%s: %s\n\n%s\n", s.standard.Title, s.chapter.DisplayTitle(), md)
	return nil
}
