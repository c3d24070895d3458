// Package toml loads comparison taxonomies from TOML using go-toml.
package toml

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/pmcompare"
	"github.com/pelletier/go-toml/v2"
)

//go:embed taxonomy.toml
var defaultTaxonomy []byte

// DefaultTaxonomy returns the built-in project-management taxonomy.
func DefaultTaxonomy() pmcompare.Taxonomy {
	t, err := ParseTaxonomy(bytes.NewReader(defaultTaxonomy))
	if err != nil {
		panic(fmt.Sprintf("toml: built-in taxonomy: %v", err))
	}
	return t
}

// ParseTaxonomy decodes and validates a taxonomy document. Topics keep their
// declaration order. Unknown keys are rejected.
func ParseTaxonomy(r io.Reader) (pmcompare.Taxonomy, error) {
	var t pmcompare.Taxonomy
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&t); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return pmcompare.Taxonomy{}, pmcompare.Errorf(pmcompare.EINVALID, "taxonomy line %d column %d: %s", row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return pmcompare.Taxonomy{}, pmcompare.Errorf(pmcompare.EINVALID, "taxonomy: %s", serr.String())
		}
		return pmcompare.Taxonomy{}, fmt.Errorf("decoding taxonomy: %w", err)
	}

	if err := t.Validate(); err != nil {
		return pmcompare.Taxonomy{}, err
	}
	return t, nil
}

// LoadTaxonomy reads a taxonomy file. An empty path selects the built-in
// taxonomy.
func LoadTaxonomy(path string) (pmcompare.Taxonomy, error) {
	if path == "" {
		return DefaultTaxonomy(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pmcompare.Taxonomy{}, pmcompare.Errorf(pmcompare.ENOTFOUND, "taxonomy file %q not found", path)
		}
		return pmcompare.Taxonomy{}, fmt.Errorf("opening taxonomy: %w", err)
	}
	defer f.Close()

	return ParseTaxonomy(f)
}
