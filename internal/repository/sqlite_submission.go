package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/checkpoint/internal/db"
	"github.com/alexanderramin/checkpoint/internal/domain"
)

// SQLiteSubmissionRepo implements SubmissionRepo using a SQLite database.
// Create writes several rows; run it inside a UnitOfWork for atomicity.
type SQLiteSubmissionRepo struct {
	db db.DBTX
}

// NewSQLiteSubmissionRepo creates a SubmissionRepo over a *sql.DB or a transaction.
func NewSQLiteSubmissionRepo(conn db.DBTX) *SQLiteSubmissionRepo {
	return &SQLiteSubmissionRepo{db: conn}
}

func (r *SQLiteSubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO submissions (id, origin, created_at) VALUES (?, ?, ?)`,
		s.ID, s.Origin, formatTimestamp(s.CreatedAt),
	); err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	for i, res := range s.Results {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO submission_results (submission_id, position, check_id, result) VALUES (?, ?, ?, ?)`,
			s.ID, i, res.CheckID, string(res.Result),
		); err != nil {
			return fmt.Errorf("inserting result %d of submission %s: %w", i, s.ID, err)
		}
	}
	return nil
}

func (r *SQLiteSubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	var s domain.Submission
	var createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, origin, created_at FROM submissions WHERE id = ?`, id,
	).Scan(&s.ID, &s.Origin, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	if s.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.Results, err = r.loadResults(ctx, s.ID); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteSubmissionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, origin, created_at FROM submissions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	var subs []*domain.Submission
	for rows.Next() {
		var s domain.Submission
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Origin, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning submission row: %w", err)
		}
		if s.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	// Close before loading results: in-memory stores run on one connection.
	rows.Close()

	for _, s := range subs {
		if s.Results, err = r.loadResults(ctx, s.ID); err != nil {
			return nil, err
		}
	}
	return subs, nil
}

func (r *SQLiteSubmissionRepo) loadResults(ctx context.Context, submissionID string) ([]domain.Result, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT check_id, result FROM submission_results WHERE submission_id = ? ORDER BY position`,
		submissionID)
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	defer rows.Close()

	results := []domain.Result{}
	for rows.Next() {
		var res domain.Result
		var value string
		if err := rows.Scan(&res.CheckID, &value); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		res.Result = domain.ResultValue(value)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}
	return results, nil
}
