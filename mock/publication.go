package mock

import (
	"context"

	"github.com/fwojciec/pmcompare"
)

var _ pmcompare.PublicationReader = (*PublicationReader)(nil)

// PublicationReader is a mock implementation of pmcompare.PublicationReader.
type PublicationReader struct {
	ReadPublicationFn func(ctx context.Context, path string) (*pmcompare.Publication, error)
}

func (r *PublicationReader) ReadPublication(ctx context.Context, path string) (*pmcompare.Publication, error) {
	return r.ReadPublicationFn(ctx, path)
}
