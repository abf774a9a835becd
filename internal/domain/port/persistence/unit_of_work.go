package persistence

import (
	"context"
)

// Transaction is an opaque handle for one open unit of work. Concrete handles
// are issued by the persistence adapter; callers hold them and give them back
// on commit, which lets the unit of work verify the caller is committing the
// transaction it actually opened.
type Transaction any

// UnitOfWork coordinates a single database transaction so that a group of
// persistence operations commits or rolls back atomically.
//
// One instance serves one request. The instance tracks its active transaction
// and must not be shared between goroutines.
type UnitOfWork interface {
	// Begin opens a transaction and returns a context carrying it together
	// with its handle. When a transaction is already active, the same handle
	// is returned unchanged: begin is idempotent and transactions never nest.
	Begin(ctx context.Context) (context.Context, Transaction, error)

	// Commit commits the transaction identified by the handle. A nil handle,
	// or a handle that does not match the active transaction, fails with an
	// invalid-operation error. The active transaction is disposed and cleared
	// whether the commit succeeds or not.
	Commit(ctx context.Context, tx Transaction) error

	// Rollback reverts the active transaction, if any, and clears it.
	// Safe to call when no transaction is active.
	Rollback(ctx context.Context) error

	// Active reports whether a transaction is currently open
	Active() bool
}

// UnitOfWorkFactory creates one UnitOfWork per request
type UnitOfWorkFactory interface {
	NewUnitOfWork() UnitOfWork
}
