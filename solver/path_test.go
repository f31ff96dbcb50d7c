package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialPath(t *testing.T) {
	order := SequentialPath{}.Order(5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.Empty(t, SequentialPath{}.Order(0))
}

func TestRandomPathIsDeterministicPermutation(t *testing.T) {
	p := RandomPath{Seed: 42}
	first := p.Order(100)
	second := p.Order(100)
	require.Equal(t, first, second, "same seed must give the same order")

	seen := make([]bool, 100)
	for _, idx := range first {
		require.False(t, seen[idx], "index %d visited twice", idx)
		seen[idx] = true
	}
	for idx, ok := range seen {
		assert.True(t, ok, "index %d never visited", idx)
	}

	other := RandomPath{Seed: 7}.Order(100)
	assert.NotEqual(t, first, other, "different seeds should permute differently")
}
