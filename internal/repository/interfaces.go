package repository

import (
	"context"

	"github.com/alexanderramin/checkpoint/internal/domain"
)

type CheckRepo interface {
	Upsert(ctx context.Context, c domain.Check) error
	GetByID(ctx context.Context, id string) (*domain.Check, error)
	// List returns checks by descending priority, ties in insertion order.
	List(ctx context.Context) ([]domain.Check, error)
	Delete(ctx context.Context, id string) error
}

type SubmissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Submission, error)
}
