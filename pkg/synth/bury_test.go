package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBury_CreatesIntermediateMaps(t *testing.T) {
	m := make(map[string]any)

	err := Bury(m, []string{"resource", "aws_vpc", "main", "cidr_block"}, "10.0.0.0/16")
	assert.NoError(t, err)

	expected := map[string]any{
		"resource": map[string]any{
			"aws_vpc": map[string]any{
				"main": map[string]any{
					"cidr_block": "10.0.0.0/16",
				},
			},
		},
	}
	assert.Equal(t, expected, m)
}

func TestBury_SingleSegment(t *testing.T) {
	m := make(map[string]any)

	err := Bury(m, []string{"region"}, "us-east-1")
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"region": "us-east-1"}, m)
}

func TestBury_EmptyPath(t *testing.T) {
	m := make(map[string]any)

	err := Bury(m, nil, "value")
	assert.Error(t, err)
	assert.True(t, IsInvalidPath(err), "expected an InvalidPathError")
	// Nothing should have been written
	assert.Empty(t, m)
}

func TestBury_TerminalCollisionAccumulates(t *testing.T) {
	m := make(map[string]any)

	assert.NoError(t, Bury(m, []string{"sg", "ingress", "from_port"}, 80))
	assert.NoError(t, Bury(m, []string{"sg", "ingress", "from_port"}, 443))

	ingress := m["sg"].(map[string]any)["ingress"].(map[string]any)
	assert.Equal(t, []any{80, 443}, ingress["from_port"], "second burial must not destroy the first")

	// A third burial keeps appending to the same slice
	assert.NoError(t, Bury(m, []string{"sg", "ingress", "from_port"}, 8080))
	assert.Equal(t, []any{80, 443, 8080}, ingress["from_port"])
}

func TestBury_ScalarInIntermediatePosition(t *testing.T) {
	m := make(map[string]any)

	assert.NoError(t, Bury(m, []string{"subnet"}, "subnet-12345"))
	assert.NoError(t, Bury(m, []string{"subnet", "cidr_block"}, "10.0.1.0/24"))

	// The scalar survives alongside the new subtree
	entries, ok := m["subnet"].([]any)
	assert.True(t, ok, "expected the collision to accumulate into a slice")
	assert.Len(t, entries, 2)
	assert.Equal(t, "subnet-12345", entries[0])
	assert.Equal(t, map[string]any{"cidr_block": "10.0.1.0/24"}, entries[1])
}

func TestBury_DescendsIntoAccumulatedSlice(t *testing.T) {
	m := make(map[string]any)

	assert.NoError(t, Bury(m, []string{"subnet"}, "subnet-12345"))
	assert.NoError(t, Bury(m, []string{"subnet", "cidr_block"}, "10.0.1.0/24"))
	assert.NoError(t, Bury(m, []string{"subnet", "availability_zone"}, "us-east-1a"))

	entries := m["subnet"].([]any)
	assert.Len(t, entries, 2)
	assert.Equal(t, map[string]any{
		"cidr_block":        "10.0.1.0/24",
		"availability_zone": "us-east-1a",
	}, entries[1], "later writes continue in the trailing map")
}

func TestBury_MergesSiblingKeys(t *testing.T) {
	m := make(map[string]any)

	assert.NoError(t, Bury(m, []string{"resource", "aws_vpc", "main", "cidr_block"}, "10.0.0.0/16"))
	assert.NoError(t, Bury(m, []string{"resource", "aws_vpc", "main", "enable_dns_support"}, true))
	assert.NoError(t, Bury(m, []string{"resource", "aws_subnet", "a", "cidr_block"}, "10.0.1.0/24"))

	resources := m["resource"].(map[string]any)
	assert.Len(t, resources, 2)

	vpc := resources["aws_vpc"].(map[string]any)["main"].(map[string]any)
	assert.Equal(t, "10.0.0.0/16", vpc["cidr_block"])
	assert.Equal(t, true, vpc["enable_dns_support"])
}
