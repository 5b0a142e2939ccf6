package registry

import (
	"errors"
	"fmt"
)

// ValidationError reports a schema violation found in a synthesized
// resource body.
type ValidationError struct {
	// ResourceType is the Terraform resource type (e.g., aws_instance)
	ResourceType string

	// ResourceName is the instance name within that type, when known
	ResourceName string

	// Message provides human-readable details
	Message string

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	if e.ResourceName != "" {
		return fmt.Sprintf("validation failed for %s.%s: %s", e.ResourceType, e.ResourceName, e.Message)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.ResourceType, e.Message)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Underlying
}

// NewValidationError creates a ValidationError with the given details.
func NewValidationError(resourceType, resourceName, message string, underlying error) *ValidationError {
	return &ValidationError{
		ResourceType: resourceType,
		ResourceName: resourceName,
		Message:      message,
		Underlying:   underlying,
	}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
