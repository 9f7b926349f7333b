// Package txmanager runs a unit of work inside one Postgres transaction and
// lets repositories pick that transaction up from the context.
package txmanager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the manager classifies.
const (
	codeUniqueViolation      = "23505"
	codeLockNotAvailable     = "55P03"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeQueryCanceled        = "57014"
)

var (
	// ErrTransient marks failures that are safe to retry: lock timeouts,
	// serialization failures and deadlocks.
	ErrTransient = errors.New("transient database error")
	// ErrUniqueViolation marks a unique constraint violation.
	ErrUniqueViolation = errors.New("unique violation")
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

type manager struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

func New(pool *pgxpool.Pool, lockTimeout time.Duration) *manager {
	return &manager{pool: pool, lockTimeout: lockTimeout}
}

// ReadCommitted runs fn in a read-committed transaction. Nested calls reuse
// the outer transaction.
func (m *manager) ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return Classify(fmt.Errorf("begin tx: %w", err))
	}

	if m.lockTimeout > 0 {
		// SET LOCAL does not accept bind parameters.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", m.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			_ = tx.Rollback(ctx)
			return Classify(fmt.Errorf("set lock_timeout: %w", err))
		}
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(Classify(err), fmt.Errorf("rollback: %w", rbErr))
		}
		return Classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Classify(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// Q returns the transaction stored in ctx, or pool when there is none.
func Q(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// Classify tags Postgres errors and expired deadlines with ErrTransient or
// ErrUniqueViolation while keeping the original chain.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTransient) {
		return err
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		// The caller's deadline ran out before lock_timeout fired.
		if pgconn.Timeout(err) {
			return fmt.Errorf("%w: %w", ErrTransient, err)
		}
		return err
	}

	switch pgErr.Code {
	case codeLockNotAvailable, codeSerializationFailure, codeDeadlockDetected, codeQueryCanceled:
		return fmt.Errorf("%w: %w", ErrTransient, err)
	case codeUniqueViolation:
		if errors.Is(err, ErrUniqueViolation) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", ErrUniqueViolation, pgErr.ConstraintName, err)
	default:
		return err
	}
}

// ConstraintName returns the name of the constraint a Postgres error
// violated, or "" when err carries none.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
