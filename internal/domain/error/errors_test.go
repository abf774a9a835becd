package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid request", ErrInvalidRequest, CodeInvalidRequest},
		{"invalid id", ErrInvalidID, CodeInvalidID},
		{"id mismatch", ErrIDMismatch, CodeIDMismatch},
		{"delete ineffective", ErrDeleteIneffective, CodeDeleteIneffective},
		{"duplicate id", ErrDuplicateID, CodeDuplicateID},
		{"not found", ErrNotFound, CodeNotFound},
		{"concurrency conflict", ErrConcurrencyConflict, CodeConcurrencyConflict},
		{"mapping failed", ErrMappingFailed, CodeMappingFailed},
		{"invalid operation", ErrInvalidOperation, CodeInvalidOperation},
		{"data access", ErrDataAccess, CodeDataAccess},
		{"unknown", errors.New("boom"), CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCode(tt.err))
		})
	}
}

func TestErrorCodeUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("fetching resource: %w", ErrNotFound)
	assert.Equal(t, CodeNotFound, ErrorCode(wrapped))

	doubleWrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrDataAccess))
	assert.Equal(t, CodeDataAccess, ErrorCode(doubleWrapped))
}
