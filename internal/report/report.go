package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"tfsynth/internal/terraform"
)

// OutputFormatType defines the format types for synthesis output.
type OutputFormatType string

const (
	// OutputFormatTypeJSON renders the manifest as a Terraform JSON document
	OutputFormatTypeJSON OutputFormatType = "JSON"
	// OutputFormatTypeTABLE renders a human-friendly summary table
	OutputFormatTypeTABLE OutputFormatType = "TABLE"
)

// ParseOutputFormat maps a user-supplied format string to a format type,
// defaulting to JSON.
func ParseOutputFormat(format string) OutputFormatType {
	switch format {
	case "table", "TABLE":
		return OutputFormatTypeTABLE
	default:
		return OutputFormatTypeJSON
	}
}

// IPrinter is the interface for rendering synthesized manifests
//
//go:generate mockery --name=IPrinter --output=./mocks
type IPrinter interface {
	PrintManifest(manifest map[string]any, format OutputFormatType) error
}

// DefaultPrinter writes to a configurable writer, stdout by default.
type DefaultPrinter struct {
	Writer io.Writer
}

// NewDefaultPrinter creates a printer writing to stdout.
func NewDefaultPrinter() *DefaultPrinter {
	return &DefaultPrinter{Writer: os.Stdout}
}

// PrintManifest renders the manifest in the requested format.
func (p *DefaultPrinter) PrintManifest(manifest map[string]any, format OutputFormatType) error {
	switch format {
	case OutputFormatTypeJSON:
		return p.printJSON(manifest)
	case OutputFormatTypeTABLE:
		return p.printTable(manifest)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// PrintManifestToFile renders the manifest in the requested format into the
// file at path, creating or truncating it.
func (p *DefaultPrinter) PrintManifestToFile(manifest map[string]any, format OutputFormatType, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	filePrinter := &DefaultPrinter{Writer: file}
	if err := filePrinter.PrintManifest(manifest, format); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// printJSON renders the manifest as an indented Terraform JSON document
func (p *DefaultPrinter) printJSON(manifest map[string]any) error {
	data, err := terraform.RenderJSON(manifest)
	if err != nil {
		return err
	}
	_, err = p.Writer.Write(data)
	return err
}

// printTable renders a summary of the synthesized document: one row per
// top-level block, plus the resource addresses
func (p *DefaultPrinter) printTable(manifest map[string]any) error {
	writer := tabwriter.NewWriter(p.Writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(writer, "BLOCK\tENTRIES")
	fmt.Fprintln(writer, "-----\t-------")

	blocks := make([]string, 0, len(manifest))
	for block := range manifest {
		blocks = append(blocks, block)
	}
	sort.Strings(blocks)

	for _, block := range blocks {
		fmt.Fprintf(writer, "%s\t%d\n", block, countEntries(manifest[block]))
	}

	addresses := terraform.ResourceAddresses(manifest)
	sort.Strings(addresses)
	if len(addresses) > 0 {
		fmt.Fprintln(writer, "")
		fmt.Fprintln(writer, "RESOURCES")
		for _, address := range addresses {
			fmt.Fprintf(writer, "%s\n", address)
		}
	}

	fmt.Fprintf(writer, "\nSummary: %d top-level blocks, %d resources\n", len(blocks), len(addresses))
	return writer.Flush()
}

// countEntries counts the immediate children of a top-level block value
func countEntries(v any) int {
	switch entries := v.(type) {
	case map[string]any:
		return len(entries)
	case []any:
		return len(entries)
	default:
		return 1
	}
}
