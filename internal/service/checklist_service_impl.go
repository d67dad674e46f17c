package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/checkpoint/internal/db"
	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/repository"
	"github.com/google/uuid"
)

type checklistService struct {
	checks      repository.CheckRepo
	submissions repository.SubmissionRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewChecklistService(
	checks repository.CheckRepo,
	submissions repository.SubmissionRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ChecklistService {
	return &checklistService{
		checks:      checks,
		submissions: submissions,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *checklistService) ListChecks(ctx context.Context) ([]domain.Check, error) {
	return s.checks.List(ctx)
}

func (s *checklistService) AddCheck(ctx context.Context, c domain.Check) (err error) {
	done := observe(ctx, s.observer, "add-check", map[string]any{"check_id": c.ID})
	defer func() { done(err) }()

	if err = c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.checks.Upsert(ctx, c)
}

func (s *checklistService) RemoveCheck(ctx context.Context, id string) (err error) {
	done := observe(ctx, s.observer, "remove-check", map[string]any{"check_id": id})
	defer func() { done(err) }()
	return s.checks.Delete(ctx, id)
}

// ImportChecks upserts a whole catalogue in one transaction. Nothing is
// written when any check is invalid or any write fails.
func (s *checklistService) ImportChecks(ctx context.Context, checks []domain.Check) (n int, err error) {
	fields := map[string]any{"count": len(checks)}
	done := observe(ctx, s.observer, "import-checks", fields)
	defer func() { done(err) }()

	if err = validateCatalogue(checks); err != nil {
		return 0, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txChecks := repository.NewSQLiteCheckRepo(tx)
		for _, c := range checks {
			if err := txChecks.Upsert(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(checks), nil
}

// RecordSubmission validates results against the current catalogue and
// stores them atomically.
func (s *checklistService) RecordSubmission(ctx context.Context, origin string, results []domain.Result) (sub *domain.Submission, err error) {
	fields := map[string]any{"origin": origin, "results": len(results)}
	done := observe(ctx, s.observer, "record-submission", fields)
	defer func() { done(err) }()

	sub = &domain.Submission{
		ID:        uuid.New().String(),
		Results:   results,
		Origin:    origin,
		CreatedAt: time.Now().UTC(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txChecks := repository.NewSQLiteCheckRepo(tx)
		catalogue, err := txChecks.List(ctx)
		if err != nil {
			return err
		}
		if err := validateResults(catalogue, results); err != nil {
			return err
		}
		return repository.NewSQLiteSubmissionRepo(tx).Create(ctx, sub)
	})
	if err != nil {
		return nil, err
	}
	fields["submission_id"] = sub.ID
	return sub, nil
}

func (s *checklistService) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	return s.submissions.GetByID(ctx, id)
}

func (s *checklistService) ListSubmissions(ctx context.Context, limit int) ([]*domain.Submission, error) {
	return s.submissions.ListRecent(ctx, limit)
}

func validateCatalogue(checks []domain.Check) error {
	var errs []error
	seen := make(map[string]bool, len(checks))
	for i, c := range checks {
		if err := c.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("checks[%d]: %w", i, err))
			continue
		}
		if seen[c.ID] {
			errs = append(errs, fmt.Errorf("checks[%d]: duplicate id %q", i, c.ID))
		}
		seen[c.ID] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...))
	}
	return nil
}

func validateResults(catalogue []domain.Check, results []domain.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("%w: at least one result is required", ErrValidation)
	}
	known := make(map[string]bool, len(catalogue))
	for _, c := range catalogue {
		known[c.ID] = true
	}
	var errs []error
	seen := make(map[string]bool, len(results))
	for i, r := range results {
		switch {
		case !known[r.CheckID]:
			errs = append(errs, fmt.Errorf("results[%d]: unknown check %q", i, r.CheckID))
		case seen[r.CheckID]:
			errs = append(errs, fmt.Errorf("results[%d]: duplicate check %q", i, r.CheckID))
		case !r.Result.Valid():
			errs = append(errs, fmt.Errorf("results[%d]: result must be yes or no, got %q", i, r.Result))
		}
		seen[r.CheckID] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidation, errors.Join(errs...))
	}
	return nil
}
