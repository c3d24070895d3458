package pmcompare

import (
	"context"
	"time"
)

// Standard represents an imported project-management standard.
type Standard struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	FilePath  string    `json:"filePath"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the standard contains invalid fields.
func (s *Standard) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "standard name required")
	}
	if s.Title == "" {
		return Errorf(EINVALID, "standard title required")
	}
	return nil
}

// StandardService represents a service for managing standards.
type StandardService interface {
	// CreateStandard creates a new standard.
	// Returns ECONFLICT if a standard with the same name exists.
	CreateStandard(ctx context.Context, std *Standard) error

	// FindStandardByID retrieves a standard by ID.
	// Returns ENOTFOUND if standard does not exist.
	FindStandardByID(ctx context.Context, id string) (*Standard, error)

	// FindStandards retrieves standards matching the filter.
	FindStandards(ctx context.Context, filter StandardFilter) ([]*Standard, error)

	// DeleteStandard permanently removes a standard and all its chapters.
	// Returns ENOTFOUND if standard does not exist.
	DeleteStandard(ctx context.Context, id string) error

	// ReplaceStandard atomically removes the standard oldID and renames the
	// standard newID to the old name. On error neither standard changes.
	// Returns ENOTFOUND if either standard does not exist.
	ReplaceStandard(ctx context.Context, oldID, newID string) (*Standard, error)
}

// StandardFilter represents a filter for FindStandards.
type StandardFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CatalogueEntry is a well-known standard shipped with the reader.
type CatalogueEntry struct {
	Name  string
	Title string
}

// Catalogue returns the standards the reader knows by name.
func Catalogue() []CatalogueEntry {
	return []CatalogueEntry{
		{Name: "PMBOK", Title: "PMBOK 7th Edition"},
		{Name: "PRINCE2", Title: "PRINCE2"},
		{Name: "ISO21502", Title: "ISO 21502"},
	}
}

// CatalogueTitle returns the display title of a well-known standard,
// or "" when name is not in the catalogue.
func CatalogueTitle(name string) string {
	for _, e := range Catalogue() {
		if e.Name == name {
			return e.Title
		}
	}
	return ""
}
