package database

import (
	"context"
	"fmt"
	"strings"

	errs "github.com/matheusvbd/crudapi/internal/domain/error"
	coreport "github.com/matheusvbd/crudapi/internal/domain/port/core"
	"github.com/matheusvbd/crudapi/internal/domain/port/persistence"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// txHandle is the concrete persistence.Transaction issued by UnitOfWork.
// Comparing handle pointers is what enforces commit-matches-begin.
type txHandle struct {
	db *gorm.DB
}

// UnitOfWork implements the unit of work pattern over a GORM transaction.
// One instance per request; the current-transaction slot is not safe for
// concurrent use from a shared instance.
type UnitOfWork struct {
	db      *gorm.DB
	logger  coreport.Logger
	current *txHandle
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
	}
}

// Begin starts a database transaction at read-committed isolation. When a
// transaction is already active it returns the existing handle unchanged;
// transactions never nest.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, persistence.Transaction, error) {
	if u.current != nil {
		u.logger.Debug("Reusing active database transaction", nil)
		return context.WithValue(ctx, txKey, u.current.db), u.current, nil
	}

	u.logger.Debug("Beginning database transaction with READ COMMITTED isolation", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, nil, fmt.Errorf("%w: failed to begin transaction: %s", errs.ErrDataAccess, tx.Error.Error())
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL READ COMMITTED").Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, nil, fmt.Errorf("%w: failed to set transaction isolation level: %s", errs.ErrDataAccess, err.Error())
	}

	u.current = &txHandle{db: tx}
	return context.WithValue(ctx, txKey, tx), u.current, nil
}

// Commit commits the transaction identified by the handle. The active
// transaction slot is cleared whether the commit succeeds or not.
func (u *UnitOfWork) Commit(ctx context.Context, tx persistence.Transaction) error {
	handle, ok := tx.(*txHandle)
	if !ok || handle == nil || handle != u.current {
		return errs.ErrInvalidOperation
	}

	defer func() { u.current = nil }()

	u.logger.Debug("Committing database transaction", nil)
	if err := handle.db.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		handle.db.Rollback()
		return fmt.Errorf("%w: failed to commit transaction: %s", errs.ErrDataAccess, err.Error())
	}

	return nil
}

// Rollback reverts the active transaction, if any, and clears it
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.current == nil {
		return nil
	}

	defer func() { u.current = nil }()

	u.logger.Debug("Rolling back database transaction", nil)

	err := u.current.db.Rollback().Error

	// A transaction that already finished is not a rollback failure
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: failed to rollback transaction: %s", errs.ErrDataAccess, err.Error())
	}

	return nil
}

// Active reports whether a transaction is currently open
func (u *UnitOfWork) Active() bool {
	return u.current != nil
}

// DBFromContext retrieves the transactional database handle from context,
// falling back to the base connection when no transaction is active
func DBFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return fallback.WithContext(ctx)
}
