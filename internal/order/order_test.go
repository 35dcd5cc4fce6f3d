package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/variantforge/variantmix/internal/clip"
	"github.com/variantforge/variantmix/internal/rng"
)

func TestGenerate_DefaultSingleton(t *testing.T) {
	src := rng.New(1)
	out := Generate(nil, []string{"a", "b", "c"}, Params{}, 1, src)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, out)
}

func TestGenerate_RotationsGiveDistinctFirstElements(t *testing.T) {
	src := rng.New(1)
	out := Generate(nil, []string{"a", "b", "c"}, Params{DifferentStartingVideo: true}, 3, src)
	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"b", "c", "a"},
		{"c", "a", "b"},
	}, out)
}

func TestGenerate_RotationsRepeatPastN(t *testing.T) {
	src := rng.New(1)
	out := Generate(nil, []string{"a", "b"}, Params{DifferentStartingVideo: true}, 4, src)
	assert.Len(t, out, 4)
	assert.Equal(t, "a", out[0][0])
	assert.Equal(t, "b", out[1][0])
	assert.Equal(t, "a", out[2][0])
	assert.Equal(t, "b", out[3][0])
}

func TestGenerate_OrderMixingProducesAllPermutations(t *testing.T) {
	src := rng.New(42)
	ids := []string{"a", "b", "c"}
	out := Generate(nil, ids, Params{OrderMixing: true}, 6, src)
	assert.Len(t, out, 6) // 3! = 6
	for _, perm := range out {
		assert.ElementsMatch(t, ids, perm)
	}
}

func TestGenerate_OrderMixingWithFairnessDistinctFirstElements(t *testing.T) {
	src := rng.New(7)
	ids := []string{"a", "b", "c"}
	out := Generate(nil, ids, Params{OrderMixing: true, DifferentStartingVideo: true}, 3, src)
	assert.Len(t, out, 3)
	firsts := map[string]bool{}
	for _, perm := range out {
		firsts[perm[0]] = true
	}
	assert.Len(t, firsts, 3)
}

func TestGenerate_GroupMixingStrictPreservesGroupOrder(t *testing.T) {
	groups := []clip.Group{
		{ID: "g2", Order: 2, Clips: []clip.Clip{{ID: "c3"}, {ID: "c4"}}},
		{ID: "g1", Order: 1, Clips: []clip.Clip{{ID: "c1"}, {ID: "c2"}}},
	}
	src := rng.New(7)
	out := Generate(groups, nil, Params{GroupMixing: true, GroupMixingStrict: true}, 1, src)

	require := out[0]
	assert.Len(t, require, 2)
	assert.Contains(t, []string{"c1", "c2"}, require[0])
	assert.Contains(t, []string{"c3", "c4"}, require[1])
}

func TestGenerate_GroupMixingProducesOutputCountSequences(t *testing.T) {
	groups := []clip.Group{
		{ID: "g1", Order: 1, Clips: []clip.Clip{{ID: "c1"}, {ID: "c2"}}},
		{ID: "g2", Order: 2, Clips: []clip.Clip{{ID: "c3"}, {ID: "c4"}}},
	}
	src := rng.New(7)
	out := Generate(groups, nil, Params{GroupMixing: true}, 5, src)
	assert.Len(t, out, 5)
	for _, seq := range out {
		assert.Len(t, seq, 2)
	}
}
