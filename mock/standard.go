package mock

import (
	"context"

	"github.com/fwojciec/pmcompare"
)

var _ pmcompare.StandardService = (*StandardService)(nil)

// StandardService is a mock implementation of pmcompare.StandardService.
type StandardService struct {
	CreateStandardFn   func(ctx context.Context, std *pmcompare.Standard) error
	FindStandardByIDFn func(ctx context.Context, id string) (*pmcompare.Standard, error)
	FindStandardsFn    func(ctx context.Context, filter pmcompare.StandardFilter) ([]*pmcompare.Standard, error)
	DeleteStandardFn   func(ctx context.Context, id string) error
	ReplaceStandardFn  func(ctx context.Context, oldID, newID string) (*pmcompare.Standard, error)
}

func (s *StandardService) CreateStandard(ctx context.Context, std *pmcompare.Standard) error {
	return s.CreateStandardFn(ctx, std)
}

func (s *StandardService) FindStandardByID(ctx context.Context, id string) (*pmcompare.Standard, error) {
	return s.FindStandardByIDFn(ctx, id)
}

func (s *StandardService) FindStandards(ctx context.Context, filter pmcompare.StandardFilter) ([]*pmcompare.Standard, error) {
	return s.FindStandardsFn(ctx, filter)
}

func (s *StandardService) DeleteStandard(ctx context.Context, id string) error {
	return s.DeleteStandardFn(ctx, id)
}

func (s *StandardService) ReplaceStandard(ctx context.Context, oldID, newID string) (*pmcompare.Standard, error) {
	return s.ReplaceStandardFn(ctx, oldID, newID)
}
