package solver

import (
	"math/rand"
)

// Path defines the traversal order over domain locations. Implementations
// must produce a finite, deterministic permutation covering every location
// exactly once, and must be restartable: Order may be called once per
// variable.
type Path interface {
	// Order returns a permutation of [0, n).
	Order(n int) []int
}

// SequentialPath visits locations in ascending index order. It is the
// default path.
type SequentialPath struct{}

// Order returns 0..n-1.
func (SequentialPath) Order(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// RandomPath visits locations in a pseudo-random order derived from a fixed
// seed, so the traversal stays deterministic across runs and variables.
type RandomPath struct {
	Seed int64
}

// Order returns a seeded permutation of [0, n).
func (p RandomPath) Order(n int) []int {
	return rand.New(rand.NewSource(p.Seed)).Perm(n)
}
