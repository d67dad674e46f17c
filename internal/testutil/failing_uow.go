package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/checkpoint/internal/db"
)

// FailingUoW runs transactions through the production unit of work but makes
// the Nth write inside each one fail. Tests use it to show that a submission
// and its results, or a catalogue import, roll back as a whole.
type FailingUoW struct {
	inner  db.UnitOfWork
	failOn int32
	err    error
}

var _ db.UnitOfWork = (*FailingUoW)(nil)

// NewFailingUoW fails write number failOn (counting from 1) with err.
func NewFailingUoW(database *sql.DB, failOn int, err error) *FailingUoW {
	return &FailingUoW{inner: db.NewSQLiteUnitOfWork(database), failOn: int32(failOn), err: err}
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &writeTrap{DBTX: tx, failOn: u.failOn, err: u.err})
	})
}

// writeTrap counts ExecContext calls; reads are not counted.
type writeTrap struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (w *writeTrap) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if w.writes.Add(1) == w.failOn {
		return nil, w.err
	}
	return w.DBTX.ExecContext(ctx, query, args...)
}
