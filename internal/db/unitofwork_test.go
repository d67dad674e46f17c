package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/checkpoint/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertCheck = `INSERT INTO checks (id, priority, description, created_at, updated_at)
	VALUES (?, ?, ?, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`

func openUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// countChecks reads through a transaction so the single in-memory
// connection is never held twice.
func countChecks(t *testing.T, uow *db.SQLiteUnitOfWork) int {
	t.Helper()
	var n int
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM checks`).Scan(&n)
	}))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertCheck, "aaa", 10, "Face matches"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertCheck, "bbb", 5, "Document supported")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countChecks(t, uow))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openUoW(t)
	errStop := errors.New("stop")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertCheck, "aaa", 10, "Face matches"); err != nil {
			return err
		}
		return errStop
	})
	require.ErrorIs(t, err, errStop)
	assert.Zero(t, countChecks(t, uow))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertCheck, "aaa", 10, "Face matches")
			panic("boom")
		})
	})
	assert.Zero(t, countChecks(t, uow))
}
