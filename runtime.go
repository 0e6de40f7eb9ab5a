package fastsplit

import "github.com/hupe1980/fastsplit/internal/simd"

// Kernel identifies a delimiter search implementation.
type Kernel = simd.Kernel

const (
	// KernelTiered is the width-tiered vector search (default).
	KernelTiered = simd.Tiered
	// KernelScalar is the byte-by-byte reference scan.
	KernelScalar = simd.Scalar
	// KernelRuntime delegates to bytes.IndexByte.
	KernelRuntime = simd.Runtime
)

// ParseKernel parses a kernel name as accepted by FASTSPLIT_KERNEL.
func ParseKernel(s string) (Kernel, bool) {
	return simd.ParseKernel(s)
}

// RuntimeInfo describes the search implementation selected at startup.
type RuntimeInfo struct {
	// ISA is the widest vector extension detected on this CPU.
	ISA string
	// Kernel is the kernel used by SegmentLen, Split and New.
	Kernel Kernel
	// Overridden reports whether FASTSPLIT_KERNEL chose the kernel.
	Overridden bool
	// VectorWidth is the full-width chunk size in bytes.
	VectorWidth int
}

// Runtime returns information about the active search implementation.
func Runtime() RuntimeInfo {
	return RuntimeInfo{
		ISA:         simd.ActiveISA().String(),
		Kernel:      simd.ActiveKernel(),
		Overridden:  simd.IsOverridden(),
		VectorWidth: simd.VectorWidth,
	}
}
