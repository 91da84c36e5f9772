package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal server error")

	// ErrBusy is returned when a form action is triggered while a previous
	// save or reset is still in flight.
	ErrBusy = errors.New("operation already in progress")

	// ErrNoPendingDelete is returned when a confirm arrives with no row in
	// pending-confirmation state.
	ErrNoPendingDelete = errors.New("no delete pending confirmation")

	// ErrOutOfRange indicates a positional store access outside the
	// collection bounds. Under normal single-mutator use this cannot
	// happen, so it is an invariant violation rather than a user-facing
	// error.
	ErrOutOfRange = errors.New("index out of range")
)

// AppError is a custom error type that can hold an HTTP status code
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationError reports the fields of a draft that failed validation,
// keyed by field name with a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// DuplicateKeyError reports a uniqueness-key collision with another record
// in the same collection.
type DuplicateKeyError struct {
	Field string
	Key   string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s: %s", e.Field, e.Key)
}

// MapErrorToStatus maps common errors to HTTP status codes
func MapErrorToStatus(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var de *DuplicateKeyError
	if errors.As(err, &de) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrNoPendingDelete) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrBusy) {
		return http.StatusConflict
	}
	// ErrOutOfRange and anything unclassified is a programmer error.
	return http.StatusInternalServerError
}
