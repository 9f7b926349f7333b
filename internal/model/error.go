package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation = errors.New("validation error") // 400

	ErrNotFound         = errors.New("not found") // 404
	ErrAccountNotFound  = fmt.Errorf("account %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrNotFound)
	ErrJobNotFound      = fmt.Errorf("service %w", ErrNotFound)
	ErrPartNotFound     = fmt.Errorf("part %w", ErrNotFound)
	ErrPurchaseNotFound = fmt.Errorf("purchase %w", ErrNotFound)
	ErrReviewNotFound   = fmt.Errorf("review %w", ErrNotFound)

	ErrConflict        = errors.New("conflict") // 409
	ErrJobInProgress   = fmt.Errorf("%w: service for this vehicle is already in progress", ErrConflict)
	ErrJobCompleted    = fmt.Errorf("%w: service is already completed", ErrConflict)
	ErrDuplicateEmail  = fmt.Errorf("%w: email already in use", ErrConflict)
	ErrDuplicateName   = fmt.Errorf("%w: name already in use", ErrConflict)
	ErrDuplicatePart   = fmt.Errorf("%w: part name already exists", ErrConflict)
	ErrPurchaseKeyUsed = fmt.Errorf("%w: purchase for this part, employee and customer already exists", ErrConflict)

	ErrInsufficientStock = errors.New("not enough stock available for this part") // 422

	ErrChatUnavailable = errors.New("telegram chat is no longer reachable")
)

// ValidationError carries field-level detail and matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add records msg for field, keeping the first message per field.
func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// OrNil returns nil when no field failed, so callers can `return v.OrNil()`.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// FieldError is a shortcut for a single failed field.
func FieldError(field, msg string) error {
	v := NewValidationError()
	v.Add(field, msg)
	return v
}
