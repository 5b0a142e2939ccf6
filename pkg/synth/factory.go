package synth

import (
	"fmt"
	"strings"
)

// CreateSynthesizer builds a Synthesizer bound to a fixed vocabulary of
// root-level keys. The name is metadata used only in diagnostics.
//
// The vocabulary must contain at least one non-blank key; duplicates are
// collapsed so the reported vocabulary stays stable.
func CreateSynthesizer(name string, keys []string) (*Synthesizer, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("synthesizer %q requires at least one vocabulary key", name)
	}

	seen := make(map[string]struct{}, len(keys))
	vocabulary := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("synthesizer %q: vocabulary keys must not be blank", name)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		vocabulary = append(vocabulary, key)
	}

	return newSynthesizer(name, vocabulary), nil
}
