package checklist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/sony/gobreaker"
)

const (
	checksPath  = "/api/v1/checks"
	resultsPath = "/api/v1/results"
)

// HTTPConfig configures an HTTPSource.
type HTTPConfig struct {
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
	// BreakerFailures is the number of consecutive failed calls that opens
	// the circuit. Zero uses 3.
	BreakerFailures int
	// BreakerCooldown is how long the circuit stays open. Zero uses 30s.
	BreakerCooldown time.Duration
	// RetryDelay is the wait before the first retry; later retries double
	// it up to RetryMaxDelay. Zero uses 200ms and 2s.
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
}

// HTTPSource talks to a checkpoint serve backend.
type HTTPSource struct {
	cfg      HTTPConfig
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker
	observer Observer
}

// NewHTTPSource creates a Source backed by the HTTP API at cfg.Endpoint.
func NewHTTPSource(cfg HTTPConfig, observer Observer) *HTTPSource {
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 5000
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BreakerFailures <= 0 {
		cfg.BreakerFailures = 3
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = 30 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 200 * time.Millisecond
	}
	if cfg.RetryMaxDelay < cfg.RetryDelay {
		cfg.RetryMaxDelay = max(2*time.Second, cfg.RetryDelay)
	}

	threshold := uint32(cfg.BreakerFailures)
	st := gobreaker.Settings{
		Name:    "checklist-http",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// Rejected requests prove the backend is alive.
		IsSuccessful: func(err error) bool {
			return err == nil || !retryable(err)
		},
	}

	return &HTTPSource{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		breaker:  gobreaker.NewCircuitBreaker(st),
		observer: observerOrNoop(observer),
	}
}

// BreakerState reports the circuit breaker state.
func (s *HTTPSource) BreakerState() gobreaker.State {
	return s.breaker.State()
}

func (s *HTTPSource) FetchChecks(ctx context.Context) ([]domain.Check, error) {
	var checks []domain.Check
	err := s.call(ctx, OpFetch, func(ctx context.Context) error {
		checks = nil
		return s.do(ctx, http.MethodGet, checksPath, nil, http.StatusOK, &checks)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if checks == nil {
		checks = []domain.Check{}
	}
	return checks, nil
}

func (s *HTTPSource) SubmitResults(ctx context.Context, results []domain.Result) error {
	if results == nil {
		results = []domain.Result{}
	}
	err := s.call(ctx, OpSubmit, func(ctx context.Context) error {
		return s.do(ctx, http.MethodPost, resultsPath, results, http.StatusCreated, nil)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	return nil
}

// call runs attempt up to 1+MaxRetries times inside the circuit breaker and
// reports the outcome to the observer. Retries back off exponentially; the
// per-call timeout covers the waits too.
func (s *HTTPSource) call(ctx context.Context, op Operation, attempt func(context.Context) error) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	attempts := 0
	_, err := s.breaker.Execute(func() (interface{}, error) {
		var lastErr error
		delays := newBackoff(s.cfg.RetryDelay, s.cfg.RetryMaxDelay)
		for i := 0; i < 1+s.cfg.MaxRetries; i++ {
			if i > 0 {
				if sleep(ctx, delays.next()) != nil {
					break
				}
			}
			attempts++
			lastErr = attempt(ctx)
			if lastErr == nil {
				return nil, nil
			}
			// Don't retry on context cancellation/timeout or client errors.
			if ctx.Err() != nil || !retryable(lastErr) {
				break
			}
		}
		return nil, lastErr
	})

	err = classify(ctx, err)
	s.observer.OnCallComplete(CallEvent{
		Op:        op,
		Source:    domain.SourceHTTP,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		Attempts:  attempts,
		ErrorCode: errorCode(err),
	})
	return err
}

func classify(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case isConnectionError(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}

// StatusError is a non-success HTTP response from the backend.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Code)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Detail)
}

func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500 || se.Code == http.StatusTooManyRequests
	}
	return true
}

// problemBody is the subset of an RFC 7807 response the client reads.
type problemBody struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (s *HTTPSource) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.cfg.Endpoint+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != want {
		se := &StatusError{Code: resp.StatusCode}
		var p problemBody
		if json.Unmarshal(respBody, &p) == nil {
			se.Detail = p.Detail
			if se.Detail == "" {
				se.Detail = p.Title
			}
		}
		return se
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
