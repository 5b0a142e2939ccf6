package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tfsynth/internal/models"
	"tfsynth/internal/providers/aws/mocks"
	"tfsynth/pkg/logging"
)

func newTestService(t *testing.T, config Config) (*Service, *mocks.InstanceServiceAPI) {
	t.Helper()
	mockSrv := mocks.NewInstanceServiceAPI(t)
	logger, _ := logging.NewTestLogger()
	return NewService(config, mockSrv, logger), mockSrv
}

func TestRun_SingleInstance(t *testing.T) {
	service, mockSrv := newTestService(t, Config{InstanceIDs: []string{"i-12345"}})

	mockSrv.On("GetInstanceDetails", mock.Anything, "i-12345").Return(&models.InstanceDetails{
		InstanceID:     "i-12345",
		InstanceType:   "t2.micro",
		AMI:            "ami-12345",
		SubnetID:       "subnet-12345",
		SecurityGroups: []string{"sg-1", "sg-2"},
		Tags: map[string]string{
			"Name": "Web Server",
			"Env":  "dev",
		},
	}, nil)

	manifest, results, err := service.Run(context.Background())
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.NoError(t, results[0].Error)
	assert.Equal(t, "web_server", results[0].ResourceName)

	body := manifest["resource"].(map[string]any)["aws_instance"].(map[string]any)["web_server"].(map[string]any)
	assert.Equal(t, "ami-12345", body["ami"])
	assert.Equal(t, "t2.micro", body["instance_type"])
	assert.Equal(t, "subnet-12345", body["subnet_id"])
	assert.Equal(t, []any{"sg-1", "sg-2"}, body["vpc_security_group_ids"])
	assert.Equal(t, map[string]any{"Name": "Web Server", "Env": "dev"}, body["tags"])
}

func TestRun_MultipleInstances(t *testing.T) {
	service, mockSrv := newTestService(t, Config{
		InstanceIDs:      []string{"i-aaa", "i-bbb"},
		ConcurrencyLimit: 2,
	})

	mockSrv.On("GetInstanceDetails", mock.Anything, "i-aaa").Return(&models.InstanceDetails{
		InstanceID:   "i-aaa",
		InstanceType: "t2.micro",
		AMI:          "ami-1",
	}, nil)
	mockSrv.On("GetInstanceDetails", mock.Anything, "i-bbb").Return(&models.InstanceDetails{
		InstanceID:   "i-bbb",
		InstanceType: "t2.medium",
		AMI:          "ami-2",
	}, nil)

	manifest, results, err := service.Run(context.Background())
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	// Results keep configuration order even though fetches race
	assert.Equal(t, "i-aaa", results[0].InstanceID)
	assert.Equal(t, "i-bbb", results[1].InstanceID)

	instances := manifest["resource"].(map[string]any)["aws_instance"].(map[string]any)
	assert.Len(t, instances, 2)
	assert.Contains(t, instances, "i_aaa")
	assert.Contains(t, instances, "i_bbb")
}

func TestRun_PartialFailure(t *testing.T) {
	service, mockSrv := newTestService(t, Config{InstanceIDs: []string{"i-good", "i-bad"}})

	mockSrv.On("GetInstanceDetails", mock.Anything, "i-good").Return(&models.InstanceDetails{
		InstanceID:   "i-good",
		InstanceType: "t2.micro",
		AMI:          "ami-1",
	}, nil)
	mockSrv.On("GetInstanceDetails", mock.Anything, "i-bad").Return(nil, errors.New("instance not found"))

	manifest, results, err := service.Run(context.Background())
	assert.NoError(t, err, "a single lookup failure must not abort the run")
	assert.Len(t, results, 2)
	assert.NoError(t, results[0].Error)
	assert.Error(t, results[1].Error)

	// Only the good instance made it into the manifest
	instances := manifest["resource"].(map[string]any)["aws_instance"].(map[string]any)
	assert.Len(t, instances, 1)
	assert.Contains(t, instances, "i_good")
}

func TestRun_ResourceNameOverride(t *testing.T) {
	service, mockSrv := newTestService(t, Config{
		InstanceIDs:  []string{"i-12345"},
		ResourceName: "Bastion Host",
	})

	mockSrv.On("GetInstanceDetails", mock.Anything, "i-12345").Return(&models.InstanceDetails{
		InstanceID:   "i-12345",
		InstanceType: "t2.micro",
		AMI:          "ami-1",
		Tags:         map[string]string{"Name": "ignored-tag"},
	}, nil)

	manifest, results, err := service.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "bastion_host", results[0].ResourceName,
		"the override wins over the Name tag")

	instances := manifest["resource"].(map[string]any)["aws_instance"].(map[string]any)
	assert.Contains(t, instances, "bastion_host")
	assert.NotContains(t, instances, "ignored_tag")
}

func TestRun_ResourceNameOverrideMultipleInstances(t *testing.T) {
	service, mockSrv := newTestService(t, Config{
		InstanceIDs:  []string{"i-aaa", "i-bbb"},
		ResourceName: "worker",
	})

	mockSrv.On("GetInstanceDetails", mock.Anything, "i-aaa").Return(&models.InstanceDetails{
		InstanceID:   "i-aaa",
		InstanceType: "t2.micro",
		AMI:          "ami-1",
	}, nil)
	mockSrv.On("GetInstanceDetails", mock.Anything, "i-bbb").Return(&models.InstanceDetails{
		InstanceID:   "i-bbb",
		InstanceType: "t2.micro",
		AMI:          "ami-2",
	}, nil)

	manifest, results, err := service.Run(context.Background())
	assert.NoError(t, err)

	// Positional suffixes keep the addresses unique, in configuration order
	assert.Equal(t, "worker_1", results[0].ResourceName)
	assert.Equal(t, "worker_2", results[1].ResourceName)

	instances := manifest["resource"].(map[string]any)["aws_instance"].(map[string]any)
	assert.Len(t, instances, 2)
	assert.Contains(t, instances, "worker_1")
	assert.Contains(t, instances, "worker_2")
}

func TestRun_NoInstances(t *testing.T) {
	service, _ := newTestService(t, Config{})

	_, _, err := service.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least one instance ID")
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Web Server", "web_server"},
		{"i-1234567890abcdef0", "i_1234567890abcdef0"},
		{"already_fine", "already_fine"},
		{"Mixed-Case.Name", "mixed_case_name"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, sanitizeName(test.input))
		})
	}
}
