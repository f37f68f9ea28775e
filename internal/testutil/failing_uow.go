package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/triage/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork whose transaction returns Err from the
// FailOn-th write (counting from 1; reads are free). Use it to check that a
// use case with several writes leaves nothing behind when one of them fails.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	counting := &execCounter{DBTX: tx, failOn: u.FailOn, err: u.Err}
	return db.CommitOrRollback(tx, func() error { return fn(ctx, counting) })
}

// execCounter is used by one transaction body at a time.
type execCounter struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (c *execCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.writes++
	if c.writes == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
