package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"tfsynth/internal/models"
)

// InstanceService looks up EC2 instances for the importer.
type InstanceService struct {
	client EC2ClientAPI
}

// NewInstanceServiceWithDefaultConfig creates an InstanceService using the
// default AWS SDK configuration chain (env, shared config, IMDS).
func NewInstanceServiceWithDefaultConfig(ctx context.Context) (*InstanceService, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, NewAWSError(ErrConfigurationError, "ec2", "", "unable to load AWS SDK config", err)
	}
	return NewInstanceServiceWithClient(ec2.NewFromConfig(cfg)), nil
}

// NewInstanceServiceWithClient creates an InstanceService with a provided client.
func NewInstanceServiceWithClient(client EC2ClientAPI) *InstanceService {
	return &InstanceService{
		client: client,
	}
}

// GetInstanceDetails retrieves the details of an EC2 instance by ID and
// maps them onto the attributes an aws_instance resource carries.
func (s *InstanceService) GetInstanceDetails(ctx context.Context, instanceID string) (*models.InstanceDetails, error) {
	resp, err := s.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, ClassifyAWSError(err, "ec2", instanceID)
	}

	if len(resp.Reservations) == 0 || len(resp.Reservations[0].Instances) == 0 {
		return nil, NewAWSError(ErrResourceNotFound, "ec2", instanceID, "EC2 instance not found", nil)
	}

	instance := resp.Reservations[0].Instances[0]

	details := &models.InstanceDetails{
		InstanceID:   instanceID,
		InstanceType: string(instance.InstanceType),
		AMI:          aws.ToString(instance.ImageId),
		Tags:         convertTags(instance.Tags),
	}

	if len(instance.SecurityGroups) > 0 {
		details.SecurityGroups = make([]string, len(instance.SecurityGroups))
		for i, sg := range instance.SecurityGroups {
			details.SecurityGroups[i] = aws.ToString(sg.GroupId)
		}
	}
	if instance.SubnetId != nil {
		details.SubnetID = aws.ToString(instance.SubnetId)
	}
	if instance.Placement != nil {
		details.AvailabilityZone = aws.ToString(instance.Placement.AvailabilityZone)
	}

	return details, nil
}

// convertTags converts AWS SDK tags to a map
func convertTags(tags []types.Tag) map[string]string {
	if len(tags) == 0 {
		return nil
	}

	result := make(map[string]string, len(tags))
	for _, tag := range tags {
		if tag.Key != nil && tag.Value != nil {
			result[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}
	}
	return result
}
