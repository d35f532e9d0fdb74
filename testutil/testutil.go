package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// Key returns a random key of length in [minLen, maxLen] drawn from
// letters, digits and underscore.
func (r *RNG) Key(minLen, maxLen int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keyLocked(minLen, maxLen)
}

func (r *RNG) keyLocked(minLen, maxLen int) []byte {
	n := minLen
	if maxLen > minLen {
		n += r.rand.Intn(maxLen - minLen + 1)
	}
	k := make([]byte, n)
	for i := range k {
		k[i] = keyAlphabet[r.rand.Intn(len(keyAlphabet))]
	}
	return k
}

// Keys returns num distinct random keys. The key space for the requested
// lengths must hold at least num keys.
func (r *RNG) Keys(num, minLen, maxLen int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, num)
	keys := make([][]byte, 0, num)
	for len(keys) < num {
		k := r.keyLocked(minLen, maxLen)
		if _, dup := seen[string(k)]; dup {
			continue
		}
		seen[string(k)] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// BinaryKeys returns num random keys of exactly length bytes, any byte value
// including NUL.
func (r *RNG) BinaryKeys(num, length int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([][]byte, num)
	for i := range keys {
		keys[i] = make([]byte, length)
		_, _ = r.rand.Read(keys[i])
	}
	return keys
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Inverse transform over the generalized harmonic number.
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// ZipfIndices returns n indices into [0, count) with Zipfian skew, for
// access patterns where a few keys are hot.
func (r *RNG) ZipfIndices(n, count int, s float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := make([]int, n)
	for i := range idx {
		idx[i] = r.zipfLocked(count, s)
	}
	return idx
}
