package fastsplit

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fastsplit/testutil"
)

func collect(s []byte, delim byte) []string {
	var out []string
	for seg := range Split(s, delim) {
		out = append(out, string(seg))
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Empty", input: "", want: nil},
		{name: "No delimiter", input: "abc", want: []string{"abc"}},
		{name: "Single delimiter", input: ",", want: []string{""}},
		{name: "Consecutive delimiters", input: "a,,b", want: []string{"a", "", "b"}},
		{name: "Trailing delimiter", input: "a,", want: []string{"a"}},
		{name: "Leading delimiter", input: ",a", want: []string{"", "a"}},
		{name: "Only delimiters", input: ",,,", want: []string{"", "", ""}},
		{
			name:  "Example",
			input: "314159265,1234578976543234567,12352352",
			want:  []string{"314159265", "1234578976543234567", "12352352"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect([]byte(tt.input), ','))
			assert.Equal(t, len(tt.want), Count([]byte(tt.input), ','))
		})
	}
}

func TestIterator_Next(t *testing.T) {
	it := New([]byte("a,b"), ',')

	seg, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []byte("a"), seg)
	assert.Equal(t, []byte("b"), it.Remaining())

	seg, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, []byte("b"), seg)
	assert.Empty(t, it.Remaining())

	seg, ok = it.Next()
	assert.False(t, ok)
	assert.Nil(t, seg)

	// Exhaustion is sticky.
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIterator_SegmentsAliasInput(t *testing.T) {
	buf := []byte("ab,cd")
	it := New(buf, ',')

	first, _ := it.Next()
	second, _ := it.Next()

	assert.Same(t, &buf[0], &first[0])
	assert.Same(t, &buf[3], &second[0])
}

func TestIterator_RemainingIsSuffix(t *testing.T) {
	rng := testutil.NewRNG(7)
	buf := rng.Buffer(10*VectorWidth, ',', 0.05)

	it := New(buf, ',')
	for {
		rest := it.Remaining()
		if len(rest) > 0 {
			assert.Same(t, &buf[len(buf)-len(rest)], &rest[0])
		}
		if _, ok := it.Next(); !ok {
			break
		}
	}
}

func TestIterator_AllEarlyBreak(t *testing.T) {
	it := New([]byte("a,b,c"), ',')

	for seg := range it.All() {
		assert.Equal(t, []byte("a"), seg)
		break
	}

	// The iterator resumes after the last yielded segment.
	assert.Equal(t, []string{"b", "c"}, collectIter(it))
}

func collectIter(it *Iterator) []string {
	var out []string
	for seg := range it.All() {
		out = append(out, string(seg))
	}
	return out
}

func TestBytes_FastSplit(t *testing.T) {
	b := Bytes("x;y;z")
	assert.Equal(t, []string{"x", "y", "z"}, collectIter(b.FastSplit(';')))
}

func TestSegmentLen_FullWidthLastByte(t *testing.T) {
	buf := bytes.Repeat([]byte{'0'}, VectorWidth)
	buf[VectorWidth-1] = ','

	assert.Equal(t, VectorWidth-1, SegmentLen(buf, ','))
	assert.Equal(t, []string{string(buf[:VectorWidth-1])}, collect(buf, ','))
}

// TestSplit_Properties checks the segment count and reassembly properties
// against the reference splitter on random buffers.
func TestSplit_Properties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, density := range []float64{0, 0.01, 0.1, 0.5} {
		for _, buf := range rng.Buffers(300, 6*VectorWidth, ',', density) {
			got := slices.Collect(Split(buf, ','))
			want := testutil.NaiveSplit(buf, ',')
			require.Equal(t, want, got)

			// Segment count: one more than the delimiters that are not the
			// final byte.
			if len(buf) > 0 {
				k := bytes.Count(buf, []byte{','})
				if buf[len(buf)-1] == ',' {
					k--
				}
				require.Len(t, got, k+1)
			} else {
				require.Empty(t, got)
			}

			// Reassembly.
			joined := bytes.Join(got, []byte{','})
			if len(buf) > 0 && buf[len(buf)-1] == ',' {
				require.Equal(t, buf[:len(buf)-1], joined)
			} else {
				require.Equal(t, buf, joined)
			}

			require.Equal(t, len(got), Count(buf, ','))
		}
	}
}

func TestCount_Kernels(t *testing.T) {
	buf := []byte("a,b,,c,")
	for _, k := range []Kernel{KernelTiered, KernelScalar, KernelRuntime} {
		o := defaultOptions()
		WithKernel(k)(&o)
		assert.Equal(t, 4, countWith(o.locate(), buf, ','), k.String())
	}
}

func TestRuntime(t *testing.T) {
	info := Runtime()

	assert.Equal(t, VectorWidth, info.VectorWidth)
	assert.NotEmpty(t, info.ISA)
	if !info.Overridden {
		assert.Equal(t, KernelTiered, info.Kernel)
	}

	k, ok := ParseKernel("runtime")
	assert.True(t, ok)
	assert.Equal(t, KernelRuntime, k)
}

func FuzzSplit(f *testing.F) {
	f.Add([]byte("314159265,1234578976543234567,12352352"), byte(','))
	f.Add([]byte("a,"), byte(','))
	f.Add([]byte(""), byte(0))

	f.Fuzz(func(t *testing.T, data []byte, delim byte) {
		got := slices.Collect(Split(data, delim))
		want := testutil.NaiveSplit(data, delim)
		if len(got) != len(want) {
			t.Fatalf("got %d segments, want %d", len(got), len(want))
		}
		for i := range got {
			if !bytes.Equal(got[i], want[i]) {
				t.Fatalf("segment %d: got %q, want %q", i, got[i], want[i])
			}
		}
	})
}
