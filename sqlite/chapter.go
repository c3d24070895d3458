package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pmcompare"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ pmcompare.ChapterService = (*ChapterService)(nil)

// ChapterService implements pmcompare.ChapterService using SQLite.
type ChapterService struct {
	db *DB
}

// NewChapterService creates a new ChapterService.
func NewChapterService(db *DB) *ChapterService {
	return &ChapterService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateChapter creates a new chapter.
func (s *ChapterService) CreateChapter(ctx context.Context, ch *pmcompare.Chapter) error {
	if err := ch.Validate(); err != nil {
		return err
	}

	ch.ID = uuid.New().String()
	ch.ImportedAt = time.Now().UTC()
	ch.ContentHash = hashContent(ch.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chapters (id, standard_id, href, title, content, text, content_hash, position, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ch.ID, ch.StandardID, ch.Href, ch.Title, ch.Content, ch.Text, ch.ContentHash,
		ch.Position, ch.ImportedAt.Format(time.RFC3339))

	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return pmcompare.Errorf(pmcompare.ECONFLICT, "chapter %q repeats the content of an earlier chapter", ch.Href)
	}
	return err
}

// FindChapterByID retrieves a chapter by ID.
func (s *ChapterService) FindChapterByID(ctx context.Context, id string) (*pmcompare.Chapter, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, standard_id, href, title, content, text, content_hash, position, imported_at
		FROM chapters
		WHERE id = ?
	`, id)

	ch, err := scanChapter(row)
	if err == sql.ErrNoRows {
		return nil, pmcompare.Errorf(pmcompare.ENOTFOUND, "chapter not found")
	}
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// FindChapters retrieves chapters matching the filter, ordered by position.
func (s *ChapterService) FindChapters(ctx context.Context, filter pmcompare.ChapterFilter) ([]*pmcompare.Chapter, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, standard_id, href, title, content, text, content_hash, position, imported_at FROM chapters WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.StandardID != nil {
		query.WriteString(" AND standard_id = ?")
		args = append(args, *filter.StandardID)
	}
	if filter.Position != nil {
		query.WriteString(" AND position = ?")
		args = append(args, *filter.Position)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*pmcompare.Chapter
	for rows.Next() {
		ch, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}

	return chapters, rows.Err()
}

// DeleteChaptersByStandard removes all chapters for a standard.
func (s *ChapterService) DeleteChaptersByStandard(ctx context.Context, standardID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chapters WHERE standard_id = ?", standardID)
	return err
}

func scanChapter(sc scanner) (*pmcompare.Chapter, error) {
	var ch pmcompare.Chapter
	var importedAt string

	if err := sc.Scan(&ch.ID, &ch.StandardID, &ch.Href, &ch.Title, &ch.Content, &ch.Text,
		&ch.ContentHash, &ch.Position, &importedAt); err != nil {
		return nil, err
	}

	var err error
	if ch.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
		return nil, err
	}
	return &ch, nil
}
