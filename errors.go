package scriba

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common failure classes.
var (
	// ErrNotSet is returned when reading or unsetting a field that has no
	// value on the document.
	ErrNotSet = errors.New("scriba: field not set")

	// ErrAbstract is returned when instantiating or loading an abstract
	// schema.
	ErrAbstract = errors.New("scriba: schema is abstract")
)

// DefinitionError reports a malformed schema declaration: a bad schema name,
// a builder error, an unknown schema reference or a duplicate registration.
// It is raised at registration or resolution time and is fatal to the
// schema's usability.
type DefinitionError struct {
	Schema string // schema name, if known
	msg    string
}

// Error returns the error string.
func (e *DefinitionError) Error() string {
	if e.Schema != "" {
		return fmt.Sprintf("scriba: schema %s: %s", e.Schema, e.msg)
	}
	return fmt.Sprintf("scriba: %s", e.msg)
}

func defErr(schema, format string, args ...any) *DefinitionError {
	return &DefinitionError{Schema: schema, msg: fmt.Sprintf(format, args...)}
}

// IsDefinitionError returns true if the error is a DefinitionError.
func IsDefinitionError(err error) bool {
	if err == nil {
		return false
	}
	var e *DefinitionError
	return errors.As(err, &e)
}

// ValidationError reports a value that failed load-time validation. Path is
// the dotted storage path of the offending value.
type ValidationError struct {
	Path string // dotted storage path
	Err  error  // underlying reason
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("scriba: validation failed at %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(path, format string, args ...any) *ValidationError {
	return &ValidationError{Path: path, Err: fmt.Errorf(format, args...)}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// AggregateError collects several errors from one operation, such as the
// per-field failures of a load or the per-candidate failures of a union
// dispatch.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "scriba: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("scriba: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// NewAggregateError returns nil, the single error, or an AggregateError,
// depending on how many non-nil errors are given.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	default:
		return &AggregateError{Errors: filtered}
	}
}

// NotSetError reports a read or unset of a field that has no value on the
// document.
type NotSetError struct {
	Schema string
	Field  string
}

// Error returns the error string.
func (e *NotSetError) Error() string {
	return fmt.Sprintf("scriba: %s has no value for field %q", e.Schema, e.Field)
}

// Is reports whether the target error matches NotSetError.
func (e *NotSetError) Is(err error) bool { return err == ErrNotSet }

// IsNotSet returns true if the error reports an unset field.
func IsNotSet(err error) bool {
	return errors.Is(err, ErrNotSet)
}

// UnknownFieldError reports the use of a field name the schema does not
// declare. This is a programmer error, not a data error.
type UnknownFieldError struct {
	Schema string
	Field  string
}

// Error returns the error string.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("scriba: %s has no field %q", e.Schema, e.Field)
}

// IsUnknownField returns true if the error is an UnknownFieldError.
func IsUnknownField(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownFieldError
	return errors.As(err, &e)
}

// AbstractError reports an attempt to instantiate or load an abstract
// schema.
type AbstractError struct {
	Schema string
}

// Error returns the error string.
func (e *AbstractError) Error() string {
	return fmt.Sprintf("scriba: schema %s is abstract and cannot be instantiated", e.Schema)
}

// Is reports whether the target error matches AbstractError.
func (e *AbstractError) Is(err error) bool { return err == ErrAbstract }

// IsAbstract returns true if the error reports an abstract schema use.
func IsAbstract(err error) bool {
	return errors.Is(err, ErrAbstract)
}

// DispatchError reports a union serialization whose stored value matches no
// candidate. This is a programmer error: the value was not produced by the
// union's own load path.
type DispatchError struct {
	Path  string
	Value any
}

// Error returns the error string.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("scriba: no union candidate at %q matches value of type %T", e.Path, e.Value)
}

// IsDispatchError returns true if the error is a DispatchError.
func IsDispatchError(err error) bool {
	if err == nil {
		return false
	}
	var e *DispatchError
	return errors.As(err, &e)
}
