package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pmcompare"
	"github.com/fwojciec/pmcompare/epub"
	"github.com/fwojciec/pmcompare/fs"
	"github.com/fwojciec/pmcompare/goquery"
	"github.com/fwojciec/pmcompare/htmltomarkdown"
	"github.com/fwojciec/pmcompare/rod"
	pmslog "github.com/fwojciec/pmcompare/slog"
	"github.com/fwojciec/pmcompare/sqlite"
	"github.com/fwojciec/pmcompare/toml"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	StandardService pmcompare.StandardService
	ChapterService  pmcompare.ChapterService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pmcompare"),
		kong.Description("Import, read and compare project-management standards"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pmcompare --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	var selected string
	if node := kongCtx.Selected(); node != nil {
		selected = node.Name
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PMCOMPARE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.StandardService = sqlite.NewStandardService(m.DB)
	m.ChapterService = sqlite.NewChapterService(m.DB)
	deps.Standards = m.StandardService
	deps.Chapters = m.ChapterService
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Views = pmslog.NewLoggingViewFactory(goquery.NewViewFactory(), deps.Logger)

	if selected == "add" {
		deps.Publications = pmslog.NewLoggingPublicationReader(epub.NewReader(), deps.Logger)
	}

	if selected == "export" {
		deps.Store = fs.NewChapterStore(filepath.Dir(cli.Export.Dir), filepath.Base(cli.Export.Dir))
	}

	if selected == "compare" {
		deps.Taxonomy, err = toml.LoadTaxonomy(cli.Compare.Taxonomy)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", pmcompare.ErrorMessage(err))
			return err
		}

		if cli.Compare.Browser {
			browser, err := rod.NewBrowser()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer browser.Close()
			deps.Views = pmslog.NewLoggingViewFactory(browser, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("PMCOMPARE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pmcompare.db"
	}
	dir := filepath.Join(home, ".pmcompare")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pmcompare.db")
}
