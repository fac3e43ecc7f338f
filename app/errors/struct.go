package errors

import (
	"errors"
	"maps"
)

// StructuredError enhances an error with a cause and structured metadata,
// which can be rendered as fields by slog.
type StructuredError struct {
	err      error
	cause    error
	metadata map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	return e.err.Error()
}

// Unwrap allows errors.Is and errors.As to work.
func (e *StructuredError) Unwrap() []error {
	var errs []error
	if e.err != nil {
		errs = append(errs, e.err)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// Cause returns the cause error of this error.
func (e *StructuredError) Cause() error {
	return e.cause
}

// Metadata returns a copy of the metadata map.
func (e *StructuredError) Metadata() map[string]any {
	if e.metadata == nil {
		return nil
	}
	result := make(map[string]any, len(e.metadata))
	maps.Copy(result, e.metadata)
	return result
}

// New creates a new StructuredError from a message string with optional
// metadata. The metadata fields must be key-value pairs with string keys.
func New(msg string, fields ...any) *StructuredError {
	return &StructuredError{err: errors.New(msg), metadata: fieldMap(fields)}
}

// NewWithCause creates a new StructuredError from a message string with a
// cause and optional metadata.
func NewWithCause(msg string, cause error, fields ...any) *StructuredError {
	return WithCause(errors.New(msg), cause, fields...)
}

// WithCause wraps an error with a cause and optional metadata. If err is
// already a StructuredError, the metadata is merged, with newer values
// overwriting older ones.
func WithCause(err, cause error, fields ...any) *StructuredError {
	metadata := fieldMap(fields)

	var serr *StructuredError
	if errors.As(err, &serr) {
		combined := make(map[string]any, len(serr.metadata)+len(metadata))
		maps.Copy(combined, serr.metadata)
		maps.Copy(combined, metadata)
		return &StructuredError{err: serr.err, cause: cause, metadata: combined}
	}

	return &StructuredError{err: err, cause: cause, metadata: metadata}
}

func fieldMap(fields []any) map[string]any {
	if len(fields)%2 != 0 {
		panic("an even number of fields is required")
	}

	metadata := make(map[string]any, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			panic("keys must be strings")
		}
		metadata[key] = fields[i+1]
	}

	return metadata
}
