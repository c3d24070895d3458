// Package fs provides file-based export of standards.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/pmcompare"
)

var _ pmcompare.ChapterStore = (*ChapterStore)(nil)

// ChapterStore implements pmcompare.ChapterStore with atomic update semantics.
// Chapters are saved to a temporary directory, then moved atomically on Commit.
type ChapterStore struct {
	baseDir string
	name    string
}

// NewChapterStore creates a new ChapterStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewChapterStore(baseDir, name string) *ChapterStore {
	return &ChapterStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ChapterStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ChapterStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *ChapterStore) Save(ctx context.Context, ch *pmcompare.ExportedChapter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ch.Number < 1 {
		return pmcompare.Errorf(pmcompare.EINVALID, "chapter number must be 1 or greater")
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), ChapterPath(ch))
	return os.WriteFile(fullPath, []byte(FormatChapter(ch)), 0644)
}

func (s *ChapterStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *ChapterStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// ChapterPath returns the file name for a chapter.
// Example: chapter 3 "Risk & Issues" → 003-risk-issues.md
func ChapterPath(ch *pmcompare.ExportedChapter) string {
	name := fmt.Sprintf("%03d", ch.Number)
	if slug := slugify(ch.Title); slug != "" {
		name += "-" + slug
	}
	return name + ".md"
}

// FormatChapter formats a chapter with YAML frontmatter.
func FormatChapter(ch *pmcompare.ExportedChapter) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("standard: ")
	b.WriteString(strconv.Quote(ch.Standard))
	b.WriteString("\nchapter: ")
	b.WriteString(strconv.Itoa(ch.Number))
	b.WriteString("\ntitle: ")
	b.WriteString(strconv.Quote(ch.Title))
	b.WriteString("\n---\n\n")
	b.WriteString(ch.Markdown)
	if !strings.HasSuffix(ch.Markdown, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	return b.String()
}
