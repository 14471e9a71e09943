// Package apperrors defines the error taxonomy shared by the services and
// translated to HTTP responses at the controller edge.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ValidationError reports every violated input field at once, keyed by field
// name, so the client can surface all of them in a single round trip.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// ReferentialError means the cart points at a product that no longer exists;
// the whole checkout aborts rather than silently dropping the line.
type ReferentialError struct {
	ProductID string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("product %s no longer exists", e.ProductID)
}

// ConflictError covers losses of optimistic races: an order-number collision
// that survived all retries, or a status transition whose expected state was
// already moved by someone else. The caller must re-read before retrying.
type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %s", e.Resource, e.Reason)
}

// InvalidTransitionError rejects an edge the order state machine does not
// have, including any move out of a terminal state.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %q to %q", e.From, e.To)
}

type PermissionError struct {
	Action string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("not allowed to %s", e.Action)
}

// PersistenceError wraps a storage failure or timeout. Nothing partial is
// ever left visible behind one; the operation is safe to retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// ErrNotFound is returned when the addressed record does not exist at all.
var ErrNotFound = errors.New("record not found")

// HTTPStatus maps a taxonomy error to a response status and body. Unknown
// errors come back as a generic 500 without leaking internals.
func HTTPStatus(err error) (int, map[string]any) {
	var (
		validation  *ValidationError
		referential *ReferentialError
		conflict    *ConflictError
		transition  *InvalidTransitionError
		permission  *PermissionError
		persistence *PersistenceError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": validation.Fields}
	case errors.As(err, &referential):
		return http.StatusConflict, map[string]any{"error": "a product in your cart is no longer available, please refresh your cart"}
	case errors.As(err, &transition):
		return http.StatusUnprocessableEntity, map[string]any{"error": transition.Error()}
	case errors.As(err, &conflict):
		return http.StatusConflict, map[string]any{"error": conflict.Error()}
	case errors.As(err, &permission):
		return http.StatusForbidden, map[string]any{"error": permission.Error()}
	case errors.As(err, &persistence):
		return http.StatusServiceUnavailable, map[string]any{"error": "storage temporarily unavailable, please retry"}
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, map[string]any{"error": "not found"}
	}
	return http.StatusInternalServerError, map[string]any{"error": "internal error"}
}
