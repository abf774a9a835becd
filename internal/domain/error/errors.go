package error

import (
	"errors"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidID           = 4001
	CodeIDMismatch          = 4002
	CodeDeleteIneffective   = 4003
	CodeEmptyName           = 4004
	CodeNegativePrice       = 4005
	CodeDuplicateID         = 4010
	CodeNotFound            = 4040
	CodeConcurrencyConflict = 4090
	CodeMappingFailed       = 4220

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeInvalidOperation = 5001
	CodeDataAccess       = 5002
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request payload cannot be parsed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidID is returned when an identifier is missing, malformed or the zero UUID
	ErrInvalidID = errors.New("identifier must be a non-zero UUID")

	// ErrIDMismatch is returned when the path identifier differs from the payload identifier
	ErrIDMismatch = errors.New("path identifier does not match payload identifier")

	// ErrNotFound is returned when the requested resource doesn't exist
	ErrNotFound = errors.New("resource not found")

	// ErrMappingFailed is returned when an entity cannot be converted to or from
	// its transfer representation
	ErrMappingFailed = errors.New("failed to map between entity and transfer object")

	// ErrDuplicateID is returned when creating a resource whose identifier already exists
	ErrDuplicateID = errors.New("resource with this identifier already exists")

	// ErrConcurrencyConflict is returned when the resource was modified or removed
	// by another operation since it was read
	ErrConcurrencyConflict = errors.New("resource was modified by a concurrent operation")

	// ErrDeleteIneffective is returned when a delete committed but the resource
	// is still present afterwards
	ErrDeleteIneffective = errors.New("delete did not take effect")

	// ErrInvalidOperation is returned when a transaction handle does not match
	// the currently active transaction
	ErrInvalidOperation = errors.New("transaction handle does not match the active transaction")

	// ErrDataAccess is returned for persistence-layer failures that are not
	// classified as one of the errors above
	ErrDataAccess = errors.New("data access error")

	// ErrEmptyName is returned when a product is created or renamed with an empty name
	ErrEmptyName = errors.New("product name cannot be empty")

	// ErrNegativePrice is returned when a product price would become negative
	ErrNegativePrice = errors.New("product price cannot be negative")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrIDMismatch):
		return CodeIDMismatch
	case errors.Is(err, ErrDeleteIneffective):
		return CodeDeleteIneffective
	case errors.Is(err, ErrEmptyName):
		return CodeEmptyName
	case errors.Is(err, ErrNegativePrice):
		return CodeNegativePrice
	case errors.Is(err, ErrDuplicateID):
		return CodeDuplicateID
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrConcurrencyConflict):
		return CodeConcurrencyConflict
	case errors.Is(err, ErrMappingFailed):
		return CodeMappingFailed
	case errors.Is(err, ErrInvalidOperation):
		return CodeInvalidOperation
	case errors.Is(err, ErrDataAccess):
		return CodeDataAccess
	default:
		return CodeInternalServer
	}
}
