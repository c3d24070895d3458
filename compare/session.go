package compare

import (
	"context"
	"sync"

	"github.com/fwojciec/pmcompare"
)

// Session runs comparisons triggered by user actions. Starting a new run or
// dismissing the results invalidates any run still in flight, and an
// invalidated run never reaches the presenter.
//
// Session is safe for concurrent use.
type Session struct {
	comparer *Comparer

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewSession creates a new Session using comparer.
func NewSession(comparer *Comparer) *Session {
	return &Session{comparer: comparer}
}

// Run compares left and right and calls present with the results, unless the
// run has been superseded by another Run or by Dismiss in the meantime.
// Returns true if the results were presented. present must not call back
// into the Session.
func (s *Session) Run(ctx context.Context, left, right Document, present func(pmcompare.Results)) bool {
	ctx, gen := s.begin(ctx)

	results := s.comparer.Compare(ctx, left, right)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || ctx.Err() != nil {
		return false
	}
	present(results)
	return true
}

// Dismiss invalidates the current run, if any.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// begin supersedes the previous run and returns the new run's context and
// generation.
func (s *Session) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	ctx, s.cancel = context.WithCancel(ctx)
	return ctx, s.generation
}
