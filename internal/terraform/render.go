package terraform

import (
	"encoding/json"
	"fmt"
)

// RenderJSON serializes a synthesized manifest as an indented Terraform
// JSON document. encoding/json writes map keys in sorted order, which gives
// the manifest its stable key ordering.
func RenderJSON(manifest map[string]any) ([]byte, error) {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render manifest as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// ResourceAddresses lists the resource addresses (type.name) present in a
// manifest, for report summaries.
func ResourceAddresses(manifest map[string]any) []string {
	resources, ok := manifest["resource"].(map[string]any)
	if !ok {
		return nil
	}

	var addresses []string
	for resourceType, entry := range resources {
		instances, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		for name := range instances {
			addresses = append(addresses, fmt.Sprintf("%s.%s", resourceType, name))
		}
	}
	return addresses
}
