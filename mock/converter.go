package mock

import "github.com/fwojciec/pmcompare"

var _ pmcompare.Converter = (*Converter)(nil)

// Converter is a mock implementation of pmcompare.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
