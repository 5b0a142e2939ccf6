package terraform

import "tfsynth/pkg/synth"

// topLevelBlocks are the block names Terraform accepts at the top level of
// a configuration. They form the vocabulary every Terraform-bound
// synthesizer is created with.
var topLevelBlocks = []string{
	"terraform",
	"provider",
	"resource",
	"variable",
	"locals",
	"output",
	"data",
	"module",
}

// Vocabulary returns the Terraform top-level block names.
func Vocabulary() []string {
	keys := make([]string, len(topLevelBlocks))
	copy(keys, topLevelBlocks)
	return keys
}

// NewSynthesizer creates a synthesis engine bound to the Terraform
// top-level vocabulary.
func NewSynthesizer() (*synth.Synthesizer, error) {
	return synth.CreateSynthesizer("terraform", Vocabulary())
}
