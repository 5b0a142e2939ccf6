package synth

import (
	"fmt"
)

// Block is a nested block of calls evaluated against the synthesizer that
// receives it. It is the Go rendition of the DSL's nested block: calls made
// inside the closure resolve through the same dispatch rule, at the path the
// enclosing call established.
type Block func(s *Synthesizer) error

// Synthesizer accumulates a sequence of dynamically-named calls into a
// nested manifest. It tracks three pieces of state:
//
//   - manifest: the output tree, merged into by Bury and never replaced
//     except through Clear
//   - ancestors: the path segments describing where the next write lands,
//     empty whenever no dispatch is in flight
//   - context: the vocabulary key currently being populated, or "" at the
//     root, where only vocabulary keys are legal
//
// The context is deliberately a single slot, not a stack: deeper nesting is
// carried entirely by the ancestors path and the recursive block evaluation.
// A Synthesizer is not safe for concurrent use.
type Synthesizer struct {
	name       string
	keys       []string
	vocabulary map[string]struct{}
	manifest   map[string]any
	ancestors  []string
	context    string
}

// newSynthesizer binds a vocabulary to a fresh engine. Construction goes
// through CreateSynthesizer, which validates the vocabulary first.
func newSynthesizer(name string, keys []string) *Synthesizer {
	vocabulary := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		vocabulary[key] = struct{}{}
	}
	return &Synthesizer{
		name:       name,
		keys:       keys,
		vocabulary: vocabulary,
		manifest:   make(map[string]any),
	}
}

// Name returns the diagnostic name the synthesizer was created with.
func (s *Synthesizer) Name() string {
	return s.name
}

// Vocabulary returns the legal root-level call names.
func (s *Synthesizer) Vocabulary() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Synthesize evaluates a block of calls against the engine and returns the
// engine for chaining. Repeated invocations keep accumulating into the same
// manifest unless Clear is called in between.
func (s *Synthesizer) Synthesize(block Block) (*Synthesizer, error) {
	if block == nil {
		return s, nil
	}
	if err := block(s); err != nil {
		return s, err
	}
	return s, nil
}

// Clear replaces the manifest with an empty one. Ancestors and context are
// untouched; both are already at rest between syntheses.
func (s *Synthesizer) Clear() {
	s.manifest = make(map[string]any)
}

// Synthesis returns the manifest accumulated so far.
func (s *Synthesizer) Synthesis() map[string]any {
	return s.manifest
}

// Manifest is an alias for Synthesis.
func (s *Synthesizer) Manifest() map[string]any {
	return s.manifest
}

// Call dispatches one named call, with an optional nested block and zero or
// more trailing values. It is the single entry point every DSL call routes
// through.
//
// The dispatch rule:
//
//  1. At the root (no active context) the name must be a vocabulary member.
//  2. Attribute writes carry at most one trailing value. Vocabulary calls
//     may carry several; those become path segments (resource type and
//     name labels), not values.
//  3. A call matching the active context pushes its name, evaluates the
//     block, buries a single trailing value, and pops.
//  4. A vocabulary call pushes its name and every trailing value as
//     segments, activates the context, evaluates the block, then clears
//     the ancestors and deactivates the context.
//  5. Anything else while a context is active is a free attribute write at
//     the current path.
//
// Branches 3 and 4 both fire when the call name equals the active context,
// so such a call evaluates its block twice and produces two write/pop
// sequences. That behavior is load-bearing for repeated same-named
// top-level blocks and is pinned by tests; do not collapse the branches.
func (s *Synthesizer) Call(name string, block Block, values ...any) error {
	_, inVocabulary := s.vocabulary[name]

	if s.context == "" && !inVocabulary {
		return NewInvalidKeyError(name, s.keys)
	}
	if !inVocabulary && len(values) > 1 {
		return NewTooManyValuesError(name, values)
	}

	if s.context != "" && name == s.context {
		if err := s.writeAt(name, block, values); err != nil {
			return err
		}
	}

	switch {
	case inVocabulary:
		s.ancestors = append(s.ancestors, name)
		for _, value := range values {
			s.ancestors = append(s.ancestors, segment(value))
		}
		s.context = name

		var err error
		if block != nil {
			err = block(s)
		}

		s.ancestors = s.ancestors[:0]
		s.context = ""
		if err != nil {
			return err
		}
	case s.context != "":
		if err := s.writeAt(name, block, values); err != nil {
			return err
		}
	}

	return nil
}

// writeAt records one segment, evaluates the nested block at that depth,
// buries a single trailing value, and pops the segment again.
func (s *Synthesizer) writeAt(name string, block Block, values []any) error {
	s.ancestors = append(s.ancestors, name)

	if block != nil {
		if err := block(s); err != nil {
			return err
		}
	}
	if len(values) == 1 {
		if err := Bury(s.manifest, s.ancestors, values[0]); err != nil {
			return err
		}
	}

	// A vocabulary call nested inside the block resets the whole stack, so
	// the segment pushed above may already be gone.
	if len(s.ancestors) > 0 {
		s.ancestors = s.ancestors[:len(s.ancestors)-1]
	}
	return nil
}

// segment renders a trailing value as a path segment. Vocabulary calls use
// their arguments as labels (resource type, resource name), so anything
// non-string is stringified.
func segment(value any) string {
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", value)
}
