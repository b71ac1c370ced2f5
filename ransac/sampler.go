package ransac

import "math/rand"

// Sampler draws minimal samples from [0, N) uniformly and without
// replacement. It is seeded, deterministic and restartable: calling Sample
// repeatedly on the same Sampler produces a deterministic sequence of
// samples for a given seed, and every returned sample is free of
// duplicates.
//
// A persistent index pool of size N is partially Fisher-Yates shuffled for
// k steps per call, then reset to identity so the next call starts from the
// same [0, N) pool again.
type Sampler struct {
	rng  *rand.Rand
	pool []int
	k    int
}

// NewSampler returns a Sampler that draws samples of size k from [0, n),
// seeded from seed. k must be <= n.
func NewSampler(seed uint64, n, k int) *Sampler {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	return &Sampler{
		rng:  rand.New(rand.NewSource(int64(seed))),
		pool: pool,
		k:    k,
	}
}

// Sample draws k distinct indices in [0, N) into out, which must have
// length k, and returns out for convenience. The pool is reset to identity
// between calls so each call draws from an unbiased [0, N) pool.
func (s *Sampler) Sample(out []int) []int {
	partialShuffle(s.rng, s.pool, s.k)
	copy(out, s.pool[:s.k])
	for i := range s.pool {
		s.pool[i] = i
	}
	return out
}

// partialShuffle performs k steps of Fisher-Yates on v so that v[:k] becomes
// a uniform random size-k subset (in random order) of v's elements.
func partialShuffle(rng *rand.Rand, v []int, k int) {
	n := len(v)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		v[i], v[j] = v[j], v[i]
	}
}
