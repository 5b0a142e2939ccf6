// Package importer turns live EC2 instances into synthesized Terraform
// manifests. Instance lookups run concurrently; synthesis itself is
// sequential because a synthesizer instance is single-threaded by contract.
package importer

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"tfsynth/internal/models"
	aws "tfsynth/internal/providers/aws"
	"tfsynth/internal/terraform"
	"tfsynth/pkg/logging"
	"tfsynth/pkg/synth"
)

// Service coordinates the import workflow.
type Service struct {
	config Config
	awsSrv aws.InstanceServiceAPI
	logger logging.Logger
}

// NewService creates an importer with explicit dependencies.
func NewService(config Config, awsSrv aws.InstanceServiceAPI, logger logging.Logger) *Service {
	return &Service{
		config: config,
		awsSrv: awsSrv,
		logger: logger,
	}
}

// NewDefaultService creates an importer backed by the default AWS SDK
// configuration chain.
func NewDefaultService(ctx context.Context, config Config) (*Service, error) {
	awsService, err := aws.NewInstanceServiceWithDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS service: %w", err)
	}
	return NewService(config, awsService, logging.NewDefaultLogger()), nil
}

type fetchResult struct {
	instanceID string
	details    *models.InstanceDetails
	err        error
}

// Run fetches every configured instance and synthesizes the successful ones
// into a single manifest. It returns the manifest, a per-instance result
// list in configuration order, and an error only for failures that abort
// the whole run; individual lookup failures are reported per instance.
func (s *Service) Run(ctx context.Context) (map[string]any, []ImportResult, error) {
	if len(s.config.InstanceIDs) == 0 {
		return nil, nil, fmt.Errorf("at least one instance ID is required")
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.config.ConcurrencyLimit > 0 {
		g.SetLimit(s.config.ConcurrencyLimit)
	}

	resultChan := make(chan fetchResult, len(s.config.InstanceIDs))

	for _, instanceID := range s.config.InstanceIDs {
		instanceID := instanceID
		g.Go(func() error {
			details, err := s.awsSrv.GetInstanceDetails(gctx, instanceID)
			select {
			case resultChan <- fetchResult{instanceID: instanceID, details: details, err: err}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	go func() {
		_ = g.Wait()
		close(resultChan)
	}()

	fetched := make(map[string]fetchResult, len(s.config.InstanceIDs))
	for result := range resultChan {
		fetched[result.instanceID] = result
	}

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("error fetching instance details: %w", err)
	}

	// Synthesize sequentially, in configuration order, so the output is
	// deterministic regardless of fetch completion order.
	engine, err := terraform.NewSynthesizer()
	if err != nil {
		return nil, nil, err
	}

	results := make([]ImportResult, 0, len(s.config.InstanceIDs))
	for i, instanceID := range s.config.InstanceIDs {
		result := ImportResult{InstanceID: instanceID}
		fetch := fetched[instanceID]

		switch {
		case fetch.err != nil:
			s.logger.Warn("skipping %s: %v", instanceID, fetch.err)
			result.Error = fetch.err
		case fetch.details == nil:
			result.Error = fmt.Errorf("no details returned for %s", instanceID)
		default:
			result.ResourceName = s.resourceNameAt(fetch.details, i)
			if err := synthesizeInstance(engine, fetch.details, result.ResourceName); err != nil {
				result.Error = fmt.Errorf("error synthesizing %s: %w", instanceID, err)
			} else {
				s.logger.Info("synthesized aws_instance.%s from %s", result.ResourceName, instanceID)
			}
		}
		results = append(results, result)
	}

	return engine.Synthesis(), results, nil
}

// synthesizeInstance writes one aws_instance resource into the engine.
func synthesizeInstance(engine *synth.Synthesizer, details *models.InstanceDetails, name string) error {
	_, err := engine.Synthesize(func(s *synth.Synthesizer) error {
		return s.Call("resource", func(s *synth.Synthesizer) error {
			attrs := []struct {
				name  string
				value string
			}{
				{"ami", details.AMI},
				{"instance_type", details.InstanceType},
				{"subnet_id", details.SubnetID},
				{"availability_zone", details.AvailabilityZone},
			}
			for _, attr := range attrs {
				if attr.value == "" {
					continue
				}
				if err := s.Call(attr.name, nil, attr.value); err != nil {
					return err
				}
			}

			if len(details.SecurityGroups) > 0 {
				groups := make([]any, len(details.SecurityGroups))
				for i, sg := range details.SecurityGroups {
					groups[i] = sg
				}
				if err := s.Call("vpc_security_group_ids", nil, groups); err != nil {
					return err
				}
			}
			if len(details.Tags) > 0 {
				tags := make(map[string]any, len(details.Tags))
				for key, value := range details.Tags {
					tags[key] = value
				}
				if err := s.Call("tags", nil, tags); err != nil {
					return err
				}
			}
			return nil
		}, "aws_instance", name)
	})
	return err
}

// resourceNameAt resolves the resource name for the instance at the given
// configuration position. A configured override replaces the derived name;
// with several instances it gets a positional suffix so addresses stay
// unique.
func (s *Service) resourceNameAt(details *models.InstanceDetails, index int) string {
	if s.config.ResourceName == "" {
		return resourceName(details)
	}
	override := sanitizeName(s.config.ResourceName)
	if len(s.config.InstanceIDs) == 1 {
		return override
	}
	return fmt.Sprintf("%s_%d", override, index+1)
}

// resourceName derives a Terraform-safe resource name from the Name tag,
// falling back to the instance ID.
func resourceName(details *models.InstanceDetails) string {
	name := details.Tags["Name"]
	if name == "" {
		name = details.InstanceID
	}
	return sanitizeName(name)
}

// sanitizeName lowercases and replaces anything outside [a-z0-9_] so the
// result is usable as a Terraform identifier.
func sanitizeName(name string) string {
	name = strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
