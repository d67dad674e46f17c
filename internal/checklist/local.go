package checklist

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/service"
)

// LocalOrigin tags submissions recorded through a LocalSource.
const LocalOrigin = "local"

// LocalSource reads and writes the SQLite store in process.
type LocalSource struct {
	svc      service.ChecklistService
	observer Observer
}

// NewLocalSource creates a Source over svc.
func NewLocalSource(svc service.ChecklistService, observer Observer) *LocalSource {
	return &LocalSource{svc: svc, observer: observerOrNoop(observer)}
}

func (s *LocalSource) FetchChecks(ctx context.Context) ([]domain.Check, error) {
	start := time.Now()
	checks, err := s.svc.ListChecks(ctx)
	s.report(OpFetch, start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return checks, nil
}

func (s *LocalSource) SubmitResults(ctx context.Context, results []domain.Result) error {
	start := time.Now()
	_, err := s.svc.RecordSubmission(ctx, LocalOrigin, results)
	s.report(OpSubmit, start, err)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	return nil
}

func (s *LocalSource) report(op Operation, start time.Time, err error) {
	s.observer.OnCallComplete(CallEvent{
		Op:        op,
		Source:    domain.SourceLocal,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		Attempts:  1,
		ErrorCode: errorCode(err),
	})
}
