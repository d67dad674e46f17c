package testutil

import (
	"time"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/google/uuid"
)

// Catalogue returns the four-check catalogue in arrival (unsorted) order.
func Catalogue() []domain.Check {
	return []domain.Check{
		{ID: "aaa", Priority: 10, Description: "Face on the picture matches face on the document"},
		{ID: "bbb", Priority: 5, Description: "Veriff supports presented document"},
		{ID: "ccc", Priority: 7, Description: "Face is clearly visible"},
		{ID: "ddd", Priority: 3, Description: "Document data is clearly visible"},
	}
}

// SortedTrio returns aaa, ccc, bbb already in priority order.
func SortedTrio() []domain.Check {
	c := Catalogue()
	return []domain.Check{c[0], c[2], c[1]}
}

// SubmissionOption customizes a test submission.
type SubmissionOption func(*domain.Submission)

func WithCreatedAt(t time.Time) SubmissionOption {
	return func(s *domain.Submission) { s.CreatedAt = t }
}

func WithOrigin(origin string) SubmissionOption {
	return func(s *domain.Submission) { s.Origin = origin }
}

// NewTestSubmission builds a submission with a fresh id.
func NewTestSubmission(results []domain.Result, opts ...SubmissionOption) *domain.Submission {
	s := &domain.Submission{
		ID:        uuid.New().String(),
		Results:   results,
		Origin:    "test",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Yes and No build results tersely.
func Yes(id string) domain.Result { return domain.Result{CheckID: id, Result: domain.ResultYes} }
func No(id string) domain.Result  { return domain.Result{CheckID: id, Result: domain.ResultNo} }
