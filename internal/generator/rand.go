package generator

import (
	"math/rand/v2"
	"sync"
)

// Rand is the randomness the generator draws from. *rand.Rand from math/rand/v2
// satisfies it, so tests can pass a seeded source.
type Rand interface {
	IntN(n int) int
	Perm(n int) []int
}

// lockedRand serialises an injected source; a seeded *rand.Rand is not safe for concurrent use.
type lockedRand struct {
	mu  sync.Mutex
	src Rand
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.IntN(n)
}

func (r *lockedRand) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Perm(n)
}

// globalRand uses the package-level math/rand/v2 source, which is safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Perm(n int) []int { return rand.Perm(n) }
