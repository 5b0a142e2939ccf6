package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleManifest() map[string]any {
	return map[string]any{
		"provider": map[string]any{
			"aws": map[string]any{"region": "us-east-1"},
		},
		"resource": map[string]any{
			"aws_vpc": map[string]any{
				"main": map[string]any{"cidr_block": "10.0.0.0/16"},
			},
			"aws_subnet": map[string]any{
				"a": map[string]any{"cidr_block": "10.0.1.0/24"},
			},
		},
	}
}

func TestPrintManifest_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := &DefaultPrinter{Writer: &buf}

	err := printer.PrintManifest(sampleManifest(), OutputFormatTypeJSON)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "provider")
	assert.Contains(t, decoded, "resource")
}

func TestPrintManifest_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := &DefaultPrinter{Writer: &buf}

	err := printer.PrintManifest(sampleManifest(), OutputFormatTypeTABLE)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "provider")
	assert.Contains(t, out, "resource")
	assert.Contains(t, out, "aws_vpc.main")
	assert.Contains(t, out, "aws_subnet.a")
	assert.Contains(t, out, "Summary: 2 top-level blocks, 2 resources")
}

func TestPrintManifestToFile(t *testing.T) {
	printer := NewDefaultPrinter()
	path := filepath.Join(t.TempDir(), "main.tf.json")

	err := printer.PrintManifestToFile(sampleManifest(), OutputFormatTypeJSON, path)
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "resource")
}

func TestPrintManifestToFile_BadPath(t *testing.T) {
	printer := NewDefaultPrinter()
	err := printer.PrintManifestToFile(sampleManifest(), OutputFormatTypeJSON,
		filepath.Join(t.TempDir(), "missing", "main.tf.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestPrintManifest_UnsupportedFormat(t *testing.T) {
	printer := &DefaultPrinter{Writer: &bytes.Buffer{}}
	err := printer.PrintManifest(sampleManifest(), OutputFormatType("YAML"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormatType
	}{
		{"json", OutputFormatTypeJSON},
		{"JSON", OutputFormatTypeJSON},
		{"table", OutputFormatTypeTABLE},
		{"TABLE", OutputFormatTypeTABLE},
		{"", OutputFormatTypeJSON},
		{"bogus", OutputFormatTypeJSON},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseOutputFormat(test.input))
		})
	}
}
