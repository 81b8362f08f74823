package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures returned by the catalog core.
type ErrorKind string

const (
	KindMissingField        ErrorKind = "missing_field"
	KindInvalidEnumValue    ErrorKind = "invalid_enum_value"
	KindInvalidField        ErrorKind = "invalid_field"
	KindNotFound            ErrorKind = "not_found"
	KindUniquenessViolation ErrorKind = "uniqueness_violation"
	KindReferenced          ErrorKind = "referenced"
	KindPersistence         ErrorKind = "persistence"
)

// Error is the single error type surfaced by entities, repositories and use cases.
type Error struct {
	Kind    ErrorKind
	Op      string
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MissingField reports a required input that was not provided.
func MissingField(entity, field string) error {
	return &Error{
		Kind:    KindMissingField,
		Field:   field,
		Message: fmt.Sprintf("%s: field %q is required", entity, field),
	}
}

// InvalidEnumValue reports a value outside a closed set.
func InvalidEnumValue(field, value string) error {
	return &Error{
		Kind:    KindInvalidEnumValue,
		Field:   field,
		Message: fmt.Sprintf("invalid value %q for %s", value, field),
	}
}

// InvalidField reports a present but malformed input.
func InvalidField(field string, err error) error {
	return &Error{
		Kind:    KindInvalidField,
		Field:   field,
		Message: fmt.Sprintf("invalid %s", field),
		Err:     err,
	}
}

// NotFound reports a missing row.
func NotFound(entity string, id uint) error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

// NotFoundf reports a missing row with a custom message.
func NotFoundf(format string, args ...any) error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

func UniquenessViolation(op string, err error) error {
	return &Error{
		Kind:    KindUniquenessViolation,
		Op:      op,
		Message: "duplicate key",
		Err:     err,
	}
}

// Referenced reports a delete blocked by dependent rows.
func Referenced(entity string, id uint, dependents int64) error {
	return &Error{
		Kind:    KindReferenced,
		Message: fmt.Sprintf("%s %d is referenced by %d favorite(s)", entity, id, dependents),
	}
}

func Persistence(op string, err error) error {
	return &Error{
		Kind:    KindPersistence,
		Op:      op,
		Message: "store failure",
		Err:     err,
	}
}

// KindOf returns the kind of err, defaulting to KindPersistence for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
