package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pmcompare"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Standards    pmcompare.StandardService
	Chapters     pmcompare.ChapterService
	Publications pmcompare.PublicationReader
	Converter    pmcompare.Converter
	Views        pmcompare.ViewFactory
	Taxonomy     pmcompare.Taxonomy
	Store        pmcompare.ChapterStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log operations to stderr"`

	Add      AddCmd      `cmd:"" help:"Import a standard from an EPUB file"`
	List     ListCmd     `cmd:"" help:"List imported standards"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a standard and its chapters"`
	Chapters ChaptersCmd `cmd:"" help:"List the chapters of a standard"`
	Read     ReadCmd     `cmd:"" help:"Print a chapter as Markdown"`
	Search   SearchCmd   `cmd:"" help:"Find chapters of a standard by title or text"`
	Export   ExportCmd   `cmd:"" help:"Write every chapter of a standard as Markdown files"`
	Compare  CompareCmd  `cmd:"" help:"Compare two chapters by topic"`
	Generate GenerateCmd `cmd:"" help:"Generate a recommended project process"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name  string `arg:"" help:"Standard name, e.g. PMBOK, PRINCE2 or ISO21502"`
	Path  string `arg:"" type:"path" help:"EPUB file"`
	Title string `short:"t" help:"Display title (default: catalogue title, then EPUB title)"`
	Force bool   `short:"f" help:"Replace an existing standard with the same name"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Standard name"`
	Force bool   `help:"Confirm deletion"`
}

// ChaptersCmd is the "chapters" subcommand.
type ChaptersCmd struct {
	Name string `arg:"" help:"Standard name"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Name    string `arg:"" help:"Standard name"`
	Chapter int    `arg:"" help:"Chapter number as shown by 'chapters'"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Name  string `arg:"" help:"Standard name"`
	Query string `arg:"" help:"Text to look for (case-insensitive)"`
	Text  bool   `short:"t" help:"Search chapter text as well as titles"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Standard name"`
	Dir  string `arg:"" type:"path" help:"Output directory (replaced on success)"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Left         string `arg:"" help:"Left standard name"`
	LeftChapter  int    `arg:"" help:"Left chapter number"`
	Right        string `arg:"" help:"Right standard name"`
	RightChapter int    `arg:"" help:"Right chapter number"`

	Taxonomy     string `type:"path" env:"PMCOMPARE_TAXONOMY" help:"Taxonomy TOML file (default: built-in)"`
	WordBoundary bool   `short:"w" help:"Match keywords on word boundaries only"`
	Select       int    `short:"s" help:"Show the numbered result highlighted in its chapter"`
	Browser      bool   `short:"b" help:"Render chapters in headless Chrome"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Type     string `required:"" enum:"software,construction,research,infrastructure,marketing" help:"Project type (${enum})"`
	Scale    string `required:"" enum:"small,medium,large" help:"Project scale (${enum})"`
	Standard string `required:"" help:"Preferred standard name"`
}
