package testutil

import (
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
		rand: rand.New(rand.NewSource(seed)),
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

// FillAlphabet fills dst with bytes drawn uniformly from alphabet.
// Locks only once per call.
func (r *RNG) FillAlphabet(dst []byte, alphabet string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
}

// Buffer returns n bytes where each byte is delim with probability density
// and otherwise a random byte different from delim.
func (r *RNG) Buffer(n int, delim byte, density float64) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, n)
	for i := range buf {
		if r.rand.Float64() < density {
			buf[i] = delim
			continue
		}
		b := byte(r.rand.Intn(255))
		if b >= delim {
			b++
		}
		buf[i] = b
	}
	return buf
}

// Buffers generates num buffers with lengths in [0, maxLen].
func (r *RNG) Buffers(num, maxLen int, delim byte, density float64) [][]byte {
	out := make([][]byte, num)
	for i := range out {
		out[i] = r.Buffer(r.Intn(maxLen+1), delim, density)
	}
	return out
}

// NaiveSegmentLen is the left-to-right reference scan: the index of the first
// delim in s, or len(s).
func NaiveSegmentLen(s []byte, delim byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == delim {
			return i
		}
	}
	return len(s)
}

// NaiveSplit returns the segments a fastsplit iterator is expected to
// produce: no segments for empty input, and no trailing empty segment when s
// ends with delim.
func NaiveSplit(s []byte, delim byte) [][]byte {
	if len(s) == 0 {
		return nil
	}
	var out [][]byte
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == delim {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
