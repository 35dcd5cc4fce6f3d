package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SameSeedProducesSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestNew_DifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			same = false
			break
		}
	}
	assert.False(t, same, "expected different seeds to diverge within 10 draws")
}

func TestFisherYates_PreservesElements(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	FisherYates(items, New(7))
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, items)
}

func TestFisherYates_DeterministicUnderSameSeed(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}
	b := []string{"a", "b", "c", "d", "e"}
	FisherYates(a, New(99))
	FisherYates(b, New(99))
	assert.Equal(t, a, b)
}
