package registry

import (
	"fmt"
	"sort"

	"tfsynth/pkg/logging"
)

// Validator checks a synthesized resource body for one resource type.
// Implementations own whatever schema rules apply beyond the engine's
// structural guarantees.
//
//go:generate mockery --name=Validator --output=./mocks
type Validator interface {
	ResourceType() string
	Validate(name string, body map[string]any) error
}

// Registry maps resource types to their validators. Registration is an
// explicit call made by application start-up code; nothing registers
// itself at package load time.
type Registry struct {
	logger     logging.Logger
	validators map[string]Validator
}

// New creates an empty registry with the default logger.
func New() *Registry {
	return NewWithLogger(logging.NewDefaultLogger())
}

// NewWithLogger creates an empty registry with a specific logger.
func NewWithLogger(logger logging.Logger) *Registry {
	return &Registry{
		logger:     logger,
		validators: make(map[string]Validator),
	}
}

// Register adds a validator for its resource type. Registering the same
// type twice is a wiring bug and fails.
func (r *Registry) Register(v Validator) error {
	resourceType := v.ResourceType()
	if resourceType == "" {
		return fmt.Errorf("validator has no resource type")
	}
	if _, exists := r.validators[resourceType]; exists {
		return fmt.Errorf("validator for %q is already registered", resourceType)
	}
	r.validators[resourceType] = v
	r.logger.Debug("registered validator for %s", resourceType)
	return nil
}

// Types returns the registered resource types in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.validators))
	for resourceType := range r.validators {
		types = append(types, resourceType)
	}
	sort.Strings(types)
	return types
}

// Validate walks the resource entries of a synthesized manifest and runs
// the matching validator for each instance. Resource types with no
// registered validator pass; deeper schema checks belong to the callers
// that own them.
func (r *Registry) Validate(manifest map[string]any) error {
	resources, ok := manifest["resource"].(map[string]any)
	if !ok {
		return nil
	}

	for resourceType, entry := range resources {
		validator, registered := r.validators[resourceType]
		if !registered {
			r.logger.Debug("no validator registered for %s, skipping", resourceType)
			continue
		}

		instances, ok := entry.(map[string]any)
		if !ok {
			return NewValidationError(resourceType, "", "resource entry is not a block", nil)
		}

		for name, body := range instances {
			if err := r.validateInstance(validator, resourceType, name, body); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateInstance handles the two shapes an instance can take: a single
// body map, or a slice of bodies when the same address was synthesized
// repeatedly.
func (r *Registry) validateInstance(validator Validator, resourceType, name string, body any) error {
	switch b := body.(type) {
	case map[string]any:
		return validator.Validate(name, b)
	case []any:
		for _, entry := range b {
			if m, ok := entry.(map[string]any); ok {
				if err := validator.Validate(name, m); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return NewValidationError(resourceType, name, "resource body is not a block", nil)
	}
}
