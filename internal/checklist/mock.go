package checklist

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/alexanderramin/checkpoint/internal/domain"
)

const (
	DefaultMockLatency     = 500 * time.Millisecond
	DefaultMockFailureRate = 0.2
)

// BuiltinCatalogue returns the mock's check list in arrival order.
func BuiltinCatalogue() []domain.Check {
	return []domain.Check{
		{ID: "aaa", Priority: 10, Description: "Face on the picture matches face on the document"},
		{ID: "bbb", Priority: 5, Description: "Veriff supports presented document"},
		{ID: "ccc", Priority: 7, Description: "Face is clearly visible"},
		{ID: "ddd", Priority: 3, Description: "Document data is clearly visible"},
	}
}

// MockOption configures a MockSource.
type MockOption func(*MockSource)

// WithLatency sets the delay applied to every call.
func WithLatency(d time.Duration) MockOption {
	return func(m *MockSource) { m.latency = d }
}

// WithFailureRate sets the share of calls, between 0 and 1, that fail.
func WithFailureRate(rate float64) MockOption {
	return func(m *MockSource) { m.failureRate = rate }
}

// WithRand injects the random source used to decide failures.
func WithRand(r *rand.Rand) MockOption {
	return func(m *MockSource) { m.rng = r }
}

// WithCatalogue replaces the built-in check list.
func WithCatalogue(checks []domain.Check) MockOption {
	return func(m *MockSource) { m.checks = checks }
}

// WithMockObserver attaches an observer.
func WithMockObserver(o Observer) MockOption {
	return func(m *MockSource) { m.observer = observerOrNoop(o) }
}

// MockSource simulates a remote checklist with latency and random failures.
type MockSource struct {
	mu          sync.Mutex
	rng         *rand.Rand
	checks      []domain.Check
	latency     time.Duration
	failureRate float64
	observer    Observer
	submitted   [][]domain.Result
}

// NewMockSource creates a MockSource with the default catalogue, latency and
// failure rate.
func NewMockSource(opts ...MockOption) *MockSource {
	m := &MockSource{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		checks:      BuiltinCatalogue(),
		latency:     DefaultMockLatency,
		failureRate: DefaultMockFailureRate,
		observer:    NoopObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockSource) FetchChecks(ctx context.Context) ([]domain.Check, error) {
	start := time.Now()
	err := m.simulate(ctx)
	m.report(OpFetch, start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	out := make([]domain.Check, len(m.checks))
	copy(out, m.checks)
	return out, nil
}

func (m *MockSource) SubmitResults(ctx context.Context, results []domain.Result) error {
	start := time.Now()
	err := m.simulate(ctx)
	m.report(OpSubmit, start, err)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	m.mu.Lock()
	m.submitted = append(m.submitted, append([]domain.Result(nil), results...))
	m.mu.Unlock()
	return nil
}

// Submitted returns every accepted payload in delivery order.
func (m *MockSource) Submitted() [][]domain.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]domain.Result, len(m.submitted))
	copy(out, m.submitted)
	return out
}

func (m *MockSource) simulate(ctx context.Context) error {
	if m.latency > 0 {
		timer := time.NewTimer(m.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	roll := m.rng.Float64()
	m.mu.Unlock()
	if roll < m.failureRate {
		return ErrSimulated
	}
	return nil
}

func (m *MockSource) report(op Operation, start time.Time, err error) {
	ev := CallEvent{
		Op:        op,
		Source:    domain.SourceMock,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		Attempts:  1,
	}
	ev.ErrorCode = errorCode(err)
	m.observer.OnCallComplete(ev)
}
