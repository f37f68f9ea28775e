package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// DBTX is what repositories run queries against: a *sql.DB for standalone
// reads, or a *sql.Tx inside WithinTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// TxFunc is the body of a transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, tx DBTX) error

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// SQLiteUnitOfWork runs transactions one at a time per process, so two
// answers to the same conversation never interleave their read-modify-write.
type SQLiteUnitOfWork struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn TxFunc) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	return CommitOrRollback(tx, func() error { return fn(ctx, tx) })
}

// CommitOrRollback commits tx if run succeeds. On error or panic the
// transaction is rolled back; a panic is re-raised after the rollback.
func CommitOrRollback(tx *sql.Tx, run func() error) (err error) {
	done := false
	defer func() {
		if done {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && err != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
	}()

	if err = run(); err != nil {
		return err
	}
	err = tx.Commit()
	done = true
	if err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
