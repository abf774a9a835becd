package database

import (
	"errors"
	"testing"

	domainErr "github.com/matheusvbd/crudapi/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("Nil error maps to nil", func(t *testing.T) {
		assert.NoError(t, mapper.MapError(nil))
	})

	t.Run("Record not found maps to not found", func(t *testing.T) {
		err := mapper.MapError(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, err, domainErr.ErrNotFound)
	})

	t.Run("Duplicate key maps to duplicate ID", func(t *testing.T) {
		for _, msg := range []string{
			`pq: duplicate key value violates unique constraint "products_pkey"`,
			"ERROR: duplicate entry '42' for key PRIMARY",
			"UNIQUE constraint failed: products.id",
		} {
			err := mapper.MapError(errors.New(msg))
			assert.ErrorIs(t, err, domainErr.ErrDuplicateID, msg)
		}
	})

	t.Run("Serialization failures map to concurrency conflict", func(t *testing.T) {
		for _, msg := range []string{
			"pq: deadlock detected",
			"pq: could not serialize access due to concurrent update",
			"ERROR: canceling statement due to lock timeout",
			"tuple concurrently updated",
		} {
			err := mapper.MapError(errors.New(msg))
			assert.ErrorIs(t, err, domainErr.ErrConcurrencyConflict, msg)
		}
	})

	t.Run("Everything else wraps data access error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := mapper.MapError(cause)
		assert.ErrorIs(t, err, domainErr.ErrDataAccess)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
