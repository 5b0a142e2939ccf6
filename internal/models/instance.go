package models

// InstanceDetails holds the EC2 instance attributes the importer turns
// into a synthesized aws_instance resource.
type InstanceDetails struct {
	InstanceID       string            `json:"instance_id,omitempty"`
	InstanceType     string            `json:"instance_type,omitempty"`
	AMI              string            `json:"ami,omitempty"`
	Tags             map[string]string `json:"tags,omitempty"`
	SecurityGroups   []string          `json:"security_groups,omitempty"`
	SubnetID         string            `json:"subnet_id,omitempty"`
	AvailabilityZone string            `json:"availability_zone,omitempty"`
}
