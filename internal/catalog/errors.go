package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidIdentifier matches every *InvalidIdentifierError via errors.Is.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// InvalidIdentifierError is returned when a caller-supplied id cannot be
// converted to the store's identifier type.
type InvalidIdentifierError struct {
	Value string
	Err   error
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q", e.Value)
}

func (e *InvalidIdentifierError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidIdentifier}
	}
	return []error{ErrInvalidIdentifier, e.Err}
}

func (e *InvalidIdentifierError) StatusCode() int {
	return http.StatusBadRequest
}

// IsInvalidIdentifier reports whether err is or wraps an InvalidIdentifierError.
func IsInvalidIdentifier(err error) bool {
	var target *InvalidIdentifierError
	return errors.As(err, &target)
}

// NotFoundError reports a well-formed lookup that matched nothing. It travels
// the same path as store errors and is told apart only by its status.
type NotFoundError struct {
	Resource string
	Status   int
}

// NewNotFoundError builds a 404 error whose message reads "<resource> not found".
func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource, Status: http.StatusNotFound}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) StatusCode() int {
	return e.Status
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// StatusCode returns the HTTP status attached to err, or 500 when none is.
func StatusCode(err error) int {
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		return coded.StatusCode()
	}
	return http.StatusInternalServerError
}

// ParseID converts a raw path parameter into a catalog identifier. Only the
// canonical hyphenated form is accepted (either case); padded, braced, urn and
// unhyphenated spellings are rejected.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &InvalidIdentifierError{Value: raw, Err: err}
	}
	if id.String() != strings.ToLower(raw) || id == uuid.Nil {
		return uuid.Nil, &InvalidIdentifierError{Value: raw}
	}
	return id, nil
}
