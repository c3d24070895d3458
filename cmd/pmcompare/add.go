package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pmcompare"
	"github.com/fwojciec/pmcompare/goquery"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	pub, err := deps.Publications.ReadPublication(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		return err
	}

	var existing *pmcompare.Standard
	if c.Force {
		found, err := deps.Standards.FindStandards(deps.Ctx, pmcompare.StandardFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
			return err
		}
		if len(found) > 0 {
			existing = found[0]
		}
	}

	// A replacement is imported under a staging name and swapped in only
	// once every chapter is stored.
	name := c.Name
	if existing != nil {
		name = stagingName(c.Name)
	}

	std := &pmcompare.Standard{
		Name:     name,
		Title:    c.title(pub),
		FilePath: c.Path,
	}

	if err := deps.Standards.CreateStandard(deps.Ctx, std); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
		if pmcompare.ErrorCode(err) == pmcompare.ECONFLICT && existing == nil {
			fmt.Fprintf(deps.Stderr, "Hint: Use --force to replace %q\n", c.Name)
		}
		return err
	}

	imported, err := c.importChapters(deps, std.ID, pub.Chapters)
	if err != nil {
		// Leave no half-imported standard behind.
		_ = deps.Standards.DeleteStandard(deps.Ctx, std.ID)
		return err
	}

	if existing != nil {
		replaced, err := deps.Standards.ReplaceStandard(deps.Ctx, existing.ID, std.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pmcompare.ErrorMessage(err))
			_ = deps.Standards.DeleteStandard(deps.Ctx, std.ID)
			return err
		}
		std = replaced
	}

	fmt.Fprintf(deps.Stdout, "Added standard %q (%s, %d chapters)\n", std.Name, std.Title, imported)
	return nil
}

// importChapters stores the chapters in reading order and returns how many
// were stored. Chapters repeating earlier content are skipped.
func (c *AddCmd) importChapters(deps *Dependencies, standardID string, chapters []pmcompare.PublicationChapter) (int, error) {
	position := 0
	for _, pc := range chapters {
		ch, err := newChapter(deps, standardID, position, pc)
		if err == nil {
			err = deps.Chapters.CreateChapter(deps.Ctx, ch)
		}
		if pmcompare.ErrorCode(err) == pmcompare.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "Skipped %s: same content as an earlier chapter\n", pc.Href)
			continue
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error importing %s: %s\n", pc.Href, pmcompare.ErrorMessage(err))
			return 0, err
		}
		position++
	}
	return position, nil
}

func stagingName(name string) string {
	return fmt.Sprintf("%s~importing-%d", name, time.Now().UnixNano())
}

// title picks the display title: the flag, the catalogue title, the EPUB
// title, then the name.
func (c *AddCmd) title(pub *pmcompare.Publication) string {
	for _, t := range []string{c.Title, pmcompare.CatalogueTitle(c.Name), pub.Title} {
		if t != "" {
			return t
		}
	}
	return c.Name
}

func newChapter(deps *Dependencies, standardID string, position int, pc pmcompare.PublicationChapter) (*pmcompare.Chapter, error) {
	view, err := goquery.NewView(pc.Content)
	if err != nil {
		return nil, err
	}
	text, err := view.Text(deps.Ctx)
	if err != nil {
		return nil, err
	}

	title := pc.Title
	if title == "" {
		title = goquery.ChapterTitle(pc.Content)
	}

	return &pmcompare.Chapter{
		StandardID: standardID,
		Href:       pc.Href,
		Title:      title,
		Content:    pc.Content,
		Text:       text,
		Position:   position,
	}, nil
}
