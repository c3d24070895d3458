package mock

import "github.com/fwojciec/pmcompare"

var _ pmcompare.Presenter = (*Presenter)(nil)

// Presenter is a mock implementation of pmcompare.Presenter.
type Presenter struct {
	PresentFn func(results pmcompare.Results)
}

func (p *Presenter) Present(results pmcompare.Results) {
	p.PresentFn(results)
}
