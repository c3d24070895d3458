package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/pmcompare"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ pmcompare.StandardService = (*StandardService)(nil)

// StandardService implements pmcompare.StandardService using SQLite.
type StandardService struct {
	db *DB
}

// NewStandardService creates a new StandardService.
func NewStandardService(db *DB) *StandardService {
	return &StandardService{db: db}
}

// CreateStandard creates a new standard.
func (s *StandardService) CreateStandard(ctx context.Context, std *pmcompare.Standard) error {
	if err := std.Validate(); err != nil {
		return err
	}

	std.ID = uuid.New().String()
	now := time.Now().UTC()
	std.CreatedAt = now
	std.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO standards (id, name, title, file_path, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, std.ID, std.Name, std.Title, std.FilePath,
		std.CreatedAt.Format(time.RFC3339), std.UpdatedAt.Format(time.RFC3339))

	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return pmcompare.Errorf(pmcompare.ECONFLICT, "standard %q already exists", std.Name)
	}
	return err
}

// FindStandardByID retrieves a standard by ID.
func (s *StandardService) FindStandardByID(ctx context.Context, id string) (*pmcompare.Standard, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, title, file_path, created_at, updated_at
		FROM standards
		WHERE id = ?
	`, id)

	std, err := scanStandard(row)
	if err == sql.ErrNoRows {
		return nil, pmcompare.Errorf(pmcompare.ENOTFOUND, "standard not found")
	}
	if err != nil {
		return nil, err
	}
	return std, nil
}

// FindStandards retrieves standards matching the filter, ordered by name.
func (s *StandardService) FindStandards(ctx context.Context, filter pmcompare.StandardFilter) ([]*pmcompare.Standard, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, title, file_path, created_at, updated_at FROM standards WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standards []*pmcompare.Standard
	for rows.Next() {
		std, err := scanStandard(rows)
		if err != nil {
			return nil, err
		}
		standards = append(standards, std)
	}

	return standards, rows.Err()
}

// DeleteStandard permanently removes a standard. Its chapters are removed
// by the foreign key cascade.
func (s *StandardService) DeleteStandard(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM standards WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pmcompare.Errorf(pmcompare.ENOTFOUND, "standard not found")
	}

	return nil
}

// ReplaceStandard removes the standard oldID and renames newID to its name
// in a single transaction.
func (s *StandardService) ReplaceStandard(ctx context.Context, oldID, newID string) (*pmcompare.Standard, error) {
	old, err := s.FindStandardByID(ctx, oldID)
	if err != nil {
		return nil, err
	}
	std, err := s.FindStandardByID(ctx, newID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM standards WHERE id = ?", oldID); err != nil {
		return nil, err
	}

	std.Name = old.Name
	std.UpdatedAt = time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `
		UPDATE standards
		SET name = ?, updated_at = ?
		WHERE id = ?
	`, std.Name, std.UpdatedAt.Format(time.RFC3339), newID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return std, nil
}

func scanStandard(sc scanner) (*pmcompare.Standard, error) {
	var std pmcompare.Standard
	var createdAt, updatedAt string

	if err := sc.Scan(&std.ID, &std.Name, &std.Title, &std.FilePath, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if std.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if std.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &std, nil
}
