package service

import (
	"context"

	"github.com/alexanderramin/checkpoint/internal/domain"
)

// ChecklistService owns the checklist catalogue and the submissions made
// against it.
type ChecklistService interface {
	ListChecks(ctx context.Context) ([]domain.Check, error)
	AddCheck(ctx context.Context, c domain.Check) error
	RemoveCheck(ctx context.Context, id string) error
	ImportChecks(ctx context.Context, checks []domain.Check) (int, error)
	RecordSubmission(ctx context.Context, origin string, results []domain.Result) (*domain.Submission, error)
	GetSubmission(ctx context.Context, id string) (*domain.Submission, error)
	ListSubmissions(ctx context.Context, limit int) ([]*domain.Submission, error)
}
