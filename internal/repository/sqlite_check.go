package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/checkpoint/internal/db"
	"github.com/alexanderramin/checkpoint/internal/domain"
)

// SQLiteCheckRepo implements CheckRepo using a SQLite database.
type SQLiteCheckRepo struct {
	db db.DBTX
}

// NewSQLiteCheckRepo creates a CheckRepo over a *sql.DB or a transaction.
func NewSQLiteCheckRepo(conn db.DBTX) *SQLiteCheckRepo {
	return &SQLiteCheckRepo{db: conn}
}

// Upsert inserts a check or updates the priority and description of an
// existing one. A check keeps its original arrival position on update.
func (r *SQLiteCheckRepo) Upsert(ctx context.Context, c domain.Check) error {
	now := nowUTC()
	query := `INSERT INTO checks (id, priority, description, arrival, created_at, updated_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(arrival), 0) + 1 FROM checks), ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			priority = excluded.priority,
			description = excluded.description,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Priority, c.Description, now, now); err != nil {
		return fmt.Errorf("upserting check %s: %w", c.ID, err)
	}
	return nil
}

func (r *SQLiteCheckRepo) GetByID(ctx context.Context, id string) (*domain.Check, error) {
	var c domain.Check
	err := r.db.QueryRowContext(ctx,
		`SELECT id, priority, description FROM checks WHERE id = ?`, id,
	).Scan(&c.ID, &c.Priority, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("check %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning check: %w", err)
	}
	return &c, nil
}

func (r *SQLiteCheckRepo) List(ctx context.Context) ([]domain.Check, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, priority, description FROM checks ORDER BY priority DESC, arrival, id`)
	if err != nil {
		return nil, fmt.Errorf("listing checks: %w", err)
	}
	defer rows.Close()

	checks := []domain.Check{}
	for rows.Next() {
		var c domain.Check
		if err := rows.Scan(&c.ID, &c.Priority, &c.Description); err != nil {
			return nil, fmt.Errorf("scanning check row: %w", err)
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checks: %w", err)
	}
	return checks, nil
}

func (r *SQLiteCheckRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM checks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting check: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("check %s: %w", id, ErrNotFound)
	}
	return nil
}
