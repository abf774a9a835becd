package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/matheusvbd/crudapi/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Serialization and locking failures mean the row was touched by a
	// concurrent operation
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "could not serialize access") ||
		strings.Contains(errMsg, "serialization failure") ||
		strings.Contains(errMsg, "lock timeout") ||
		strings.Contains(errMsg, "concurrently updated"):
		return domainErr.ErrConcurrencyConflict

	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate entry"):
		return domainErr.ErrDuplicateID

	default:
		return fmt.Errorf("%w: %s", domainErr.ErrDataAccess, err.Error())
	}
}
