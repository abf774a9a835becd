package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	errs "github.com/matheusvbd/crudapi/internal/domain/error"
	"github.com/matheusvbd/crudapi/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB opens a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

func expectBegin(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec("SET TRANSACTION ISOLATION LEVEL READ COMMITTED").
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestUnitOfWorkBegin(t *testing.T) {
	ctx := context.Background()

	t.Run("Opens a transaction at read committed isolation", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		txCtx, tx, err := uow.Begin(ctx)

		require.NoError(t, err)
		assert.NotNil(t, tx)
		assert.NotNil(t, txCtx.Value(txKey))
		assert.True(t, uow.Active())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin is idempotent while a transaction is active", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		_, tx1, err := uow.Begin(ctx)
		require.NoError(t, err)

		// Second begin must not hit the database
		_, tx2, err := uow.Begin(ctx)
		require.NoError(t, err)

		assert.Same(t, tx1, tx2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUnitOfWorkCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("Commits the active transaction and clears it", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)
		mock.ExpectCommit()

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		_, tx, err := uow.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, uow.Commit(ctx, tx))
		assert.False(t, uow.Active())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nil handle fails with invalid operation", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		_, _, err := uow.Begin(ctx)
		require.NoError(t, err)

		err = uow.Commit(ctx, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.True(t, uow.Active())
	})

	t.Run("Handle from another unit of work fails with invalid operation", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)
		expectBegin(mock)

		uow1 := NewUnitOfWork(db, logger.NewNoopLogger())
		uow2 := NewUnitOfWork(db, logger.NewNoopLogger())

		_, _, err := uow1.Begin(ctx)
		require.NoError(t, err)
		_, tx2, err := uow2.Begin(ctx)
		require.NoError(t, err)

		err = uow1.Commit(ctx, tx2)
		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
		assert.True(t, uow1.Active())
	})

	t.Run("Commit twice with the same handle fails the second time", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)
		mock.ExpectCommit()

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		_, tx, err := uow.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, uow.Commit(ctx, tx))
		err = uow.Commit(ctx, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("Commit failure surfaces as data access error and clears the slot", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)
		mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		_, tx, err := uow.Begin(ctx)
		require.NoError(t, err)

		err = uow.Commit(ctx, tx)
		assert.ErrorIs(t, err, errs.ErrDataAccess)
		assert.False(t, uow.Active())
	})
}

func TestUnitOfWorkRollback(t *testing.T) {
	ctx := context.Background()

	t.Run("Rolls back the active transaction and clears it", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)
		mock.ExpectRollback()

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		_, _, err := uow.Begin(ctx)
		require.NoError(t, err)

		require.NoError(t, uow.Rollback(ctx))
		assert.False(t, uow.Active())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Safe to call when no transaction is active", func(t *testing.T) {
		db, _ := newMockDB(t)

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		assert.NoError(t, uow.Rollback(ctx))
		assert.False(t, uow.Active())
	})

	t.Run("Begin after rollback opens a fresh transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)
		mock.ExpectRollback()
		expectBegin(mock)

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		_, tx1, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Rollback(ctx))

		_, tx2, err := uow.Begin(ctx)
		require.NoError(t, err)
		assert.NotSame(t, tx1, tx2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBFromContext(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the transaction when one is carried in context", func(t *testing.T) {
		db, mock := newMockDB(t)
		expectBegin(mock)

		uow := NewUnitOfWork(db, logger.NewNoopLogger())
		txCtx, _, err := uow.Begin(ctx)
		require.NoError(t, err)

		got := DBFromContext(txCtx, db)
		assert.Same(t, uow.current.db, got)
	})

	t.Run("Falls back to the base connection outside a transaction", func(t *testing.T) {
		db, _ := newMockDB(t)

		got := DBFromContext(ctx, db)
		assert.NotNil(t, got)
	})
}
