package checklist

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/sony/gobreaker"
)

// Guard wraps a Source so that at most one fetch and one submit are
// outstanding at a time. A call made while the same operation is running
// fails with ErrInFlight.
type Guard struct {
	inner      Source
	fetching   atomic.Bool
	submitting atomic.Bool
}

// NewGuard wraps inner.
func NewGuard(inner Source) *Guard {
	return &Guard{inner: inner}
}

func (g *Guard) FetchChecks(ctx context.Context) ([]domain.Check, error) {
	if !g.fetching.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer g.fetching.Store(false)
	return g.inner.FetchChecks(ctx)
}

func (g *Guard) SubmitResults(ctx context.Context, results []domain.Result) error {
	if !g.submitting.CompareAndSwap(false, true) {
		return ErrInFlight
	}
	defer g.submitting.Store(false)
	return g.inner.SubmitResults(ctx, results)
}

// BreakerState reports the wrapped source's circuit breaker state. ok is
// false when the source has no breaker.
func (g *Guard) BreakerState() (state gobreaker.State, ok bool) {
	if b, isBreaker := g.inner.(interface{ BreakerState() gobreaker.State }); isBreaker {
		return b.BreakerState(), true
	}
	return gobreaker.StateClosed, false
}
