package terraform

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"tfsynth/pkg/logging"
	"tfsynth/pkg/synth"
)

// Loader reads an HCL configuration file and replays its blocks and
// attributes as calls against a synthesis engine. Block types become
// dispatch calls with their labels as trailing path segments, block bodies
// become nested blocks, and attributes become single-value writes, so the
// engine's own dispatch rule decides what is legal where.
//
// Expressions are evaluated without an evaluation context; only literal
// values (and literal collections) are supported.
type Loader struct {
	logger logging.Logger
}

// NewLoader creates a Loader with the default logger.
func NewLoader() *Loader {
	return NewLoaderWithLogger(logging.NewDefaultLogger())
}

// NewLoaderWithLogger creates a Loader with a specific logger.
func NewLoaderWithLogger(logger logging.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// LoadFile parses the HCL file at path and synthesizes it into s.
func (l *Loader) LoadFile(path string, s *synth.Synthesizer) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return fmt.Errorf("parsed HCL file has no native syntax body: %s", path)
	}

	l.logger.Debug("replaying %d top-level blocks from %s", len(body.Blocks), path)
	if _, err := s.Synthesize(l.replayBody(body)); err != nil {
		return fmt.Errorf("failed to synthesize %s: %w", path, err)
	}
	return nil
}

// replayBody walks one HCL body, issuing an engine call per attribute and
// per nested block: attributes first, then blocks, each group in source
// order. Attribute/block interleaving within a body is not preserved;
// hclsyntax stores the two separately and the manifest shape does not
// depend on it.
func (l *Loader) replayBody(body *hclsyntax.Body) synth.Block {
	return func(s *synth.Synthesizer) error {
		for _, attr := range sortedAttributes(body) {
			value, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("failed to evaluate attribute %q: %s", attr.Name, diags.Error())
			}
			decoded, err := decodeValue(value)
			if err != nil {
				return fmt.Errorf("failed to decode attribute %q: %w", attr.Name, err)
			}
			if err := s.Call(attr.Name, nil, decoded); err != nil {
				return err
			}
		}

		for _, block := range body.Blocks {
			labels := make([]any, len(block.Labels))
			for i, label := range block.Labels {
				labels[i] = label
			}
			if err := s.Call(block.Type, l.replayBody(block.Body), labels...); err != nil {
				return err
			}
		}
		return nil
	}
}

// sortedAttributes returns a body's attributes ordered by source position,
// since hclsyntax stores them in a map.
func sortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})
	return attrs
}
