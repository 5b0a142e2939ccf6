// Package schema holds per-resource validators for the AWS resource types
// the generator ships support for. Each validator is mechanical: it checks
// that the required attributes of its resource type made it into the
// synthesized body. Anything beyond required-attribute presence is left to
// the provider.
package schema

import (
	"tfsynth/internal/registry"
)

// ResourceValidator validates one resource type by checking that a fixed
// set of required attributes is present.
type ResourceValidator struct {
	resourceType string
	required     []string
}

// NewResourceValidator creates a validator requiring the given attributes.
func NewResourceValidator(resourceType string, required ...string) *ResourceValidator {
	return &ResourceValidator{
		resourceType: resourceType,
		required:     required,
	}
}

// ResourceType returns the Terraform resource type this validator covers.
func (v *ResourceValidator) ResourceType() string {
	return v.resourceType
}

// Validate checks that every required attribute is present in the body.
func (v *ResourceValidator) Validate(name string, body map[string]any) error {
	for _, attr := range v.required {
		if _, ok := body[attr]; !ok {
			return registry.NewValidationError(v.resourceType, name,
				"missing required attribute "+attr, nil)
		}
	}
	return nil
}

// NewAWSInstanceValidator validates aws_instance resources.
func NewAWSInstanceValidator() *ResourceValidator {
	return NewResourceValidator("aws_instance", "ami", "instance_type")
}

// NewAWSVPCValidator validates aws_vpc resources.
func NewAWSVPCValidator() *ResourceValidator {
	return NewResourceValidator("aws_vpc", "cidr_block")
}

// NewAWSSubnetValidator validates aws_subnet resources.
func NewAWSSubnetValidator() *ResourceValidator {
	return NewResourceValidator("aws_subnet", "vpc_id", "cidr_block")
}

// NewAWSSecurityGroupValidator validates aws_security_group resources.
// The type has no strictly required arguments.
func NewAWSSecurityGroupValidator() *ResourceValidator {
	return NewResourceValidator("aws_security_group")
}

// RegisterDefaults registers every validator this package ships into the
// given registry. Called once by application start-up code.
func RegisterDefaults(r *registry.Registry) error {
	validators := []*ResourceValidator{
		NewAWSInstanceValidator(),
		NewAWSVPCValidator(),
		NewAWSSubnetValidator(),
		NewAWSSecurityGroupValidator(),
	}
	for _, v := range validators {
		if err := r.Register(v); err != nil {
			return err
		}
	}
	return nil
}
