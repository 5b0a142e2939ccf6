package synth

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidKeyError is returned when a root-level call uses a name that is
// not part of the synthesizer's vocabulary.
type InvalidKeyError struct {
	// Key is the offending call name
	Key string

	// Vocabulary lists the names that are legal at the root level
	Vocabulary []string
}

// Error returns a message naming the offending key and the expected vocabulary.
func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %q: expected one of [%s]", e.Key, strings.Join(e.Vocabulary, ", "))
}

// NewInvalidKeyError creates an InvalidKeyError for the given key and vocabulary.
func NewInvalidKeyError(key string, vocabulary []string) *InvalidKeyError {
	return &InvalidKeyError{
		Key:        key,
		Vocabulary: vocabulary,
	}
}

// TooManyValuesError is returned when a call supplies more than one trailing
// value argument where at most one is permitted.
type TooManyValuesError struct {
	// Key is the call name that received the excess values
	Key string

	// Count is the number of values received
	Count int

	// Values are the values received
	Values []any
}

// Error returns a message reporting the call name, count, and values.
func (e *TooManyValuesError) Error() string {
	return fmt.Sprintf("too many values for %q: got %d (%v), want at most 1", e.Key, e.Count, e.Values)
}

// NewTooManyValuesError creates a TooManyValuesError for the given call.
func NewTooManyValuesError(key string, values []any) *TooManyValuesError {
	return &TooManyValuesError{
		Key:    key,
		Count:  len(values),
		Values: values,
	}
}

// InvalidPathError is returned when Bury is given an empty path. An empty
// path means the ancestors stack emptied prematurely, which is an engine
// bug rather than a caller-input problem.
type InvalidPathError struct{}

// Error returns the invariant-violation message.
func (e *InvalidPathError) Error() string {
	return "invalid path: at least one path segment is required"
}

// IsInvalidKey reports whether err is an InvalidKeyError.
func IsInvalidKey(err error) bool {
	var e *InvalidKeyError
	return errors.As(err, &e)
}

// IsTooManyValues reports whether err is a TooManyValuesError.
func IsTooManyValues(err error) bool {
	var e *TooManyValuesError
	return errors.As(err, &e)
}

// IsInvalidPath reports whether err is an InvalidPathError.
func IsInvalidPath(err error) bool {
	var e *InvalidPathError
	return errors.As(err, &e)
}
