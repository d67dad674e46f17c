// Package checklist provides the collaborators that supply checks and accept
// submitted results: a built-in mock, an HTTP client for the serve backend and
// an in-process source over the local store.
package checklist

import (
	"context"
	"errors"
	"net"

	"github.com/alexanderramin/checkpoint/internal/domain"
)

var (
	// ErrFetchFailed wraps every failure to retrieve the check list.
	ErrFetchFailed = errors.New("failed to fetch checks")

	// ErrSubmitFailed wraps every failure to deliver a submission.
	ErrSubmitFailed = errors.New("failed to submit results")

	// ErrInFlight is returned when an operation is started while the same
	// operation is still outstanding.
	ErrInFlight = errors.New("operation already in flight")

	// ErrUnavailable indicates the backend could not be reached or its
	// circuit breaker is open.
	ErrUnavailable = errors.New("checklist backend unavailable")

	// ErrTimeout indicates a call exceeded its deadline.
	ErrTimeout = errors.New("checklist request timed out")

	// ErrSimulated is the failure injected by the mock source.
	ErrSimulated = errors.New("simulated failure")
)

// Source supplies checks and accepts submitted results.
type Source interface {
	FetchChecks(ctx context.Context) ([]domain.Check, error)
	SubmitResults(ctx context.Context, results []domain.Result) error
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrSimulated):
		return "SIMULATED"
	default:
		return "UNKNOWN"
	}
}
