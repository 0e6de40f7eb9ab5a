package simd

import (
	"math/rand"
	"strconv"
	"testing"
)

// Benchmarks compare the kernels on a buffer with a single delimiter at the
// end, so every kernel has to scan the full input.
//
//   go test ./internal/simd -run '^$' -bench . -benchmem

func benchRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

// randNoDelim fills n bytes from 'a'..'z' and terminates with ','.
func randNoDelim(r *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte('a' + r.Intn(26))
	}
	if n > 0 {
		out[n-1] = ','
	}
	return out
}

func BenchmarkSegmentLen_Kernels(b *testing.B) {
	r := benchRand()
	for _, k := range []Kernel{Tiered, Scalar, Runtime} {
		for _, n := range []int{15, 64, 255, 4096, 1 << 16} {
			b.Run(k.String()+"/n="+strconv.Itoa(n), func(b *testing.B) {
				buf := randNoDelim(r, n)
				fn := KernelFunc(k)
				b.SetBytes(int64(n))
				b.ResetTimer()
				var sink int
				for b.Loop() {
					sink = fn(buf, ',')
				}
				_ = sink
			})
		}
	}
}

func BenchmarkSegmentLen_Remainder(b *testing.B) {
	r := benchRand()
	// VectorWidth-1 bytes exercises every remainder tier plus the scalar tail.
	buf := randNoDelim(r, VectorWidth-1)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	var sink int
	for b.Loop() {
		sink = segmentLenTiered(buf, ',')
	}
	_ = sink
}
