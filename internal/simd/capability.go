package simd

import (
	"os"
	"runtime"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents a CPU without a recognised vector extension.
	Generic ISA = iota
	// NEON represents ARM64 NEON (128-bit SIMD, ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2 (scalable vectors, 128-2048 bit).
	SVE2
	// AVX2 represents x86-64 AVX2 (256-bit SIMD).
	AVX2
	// AVX512 represents x86-64 AVX-512 (512-bit SIMD).
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Kernel identifies a delimiter search implementation.
type Kernel uint8

const (
	// Tiered is the width-tiered SWAR search with bisection.
	Tiered Kernel = iota
	// Scalar is the byte-by-byte reference scan.
	Scalar
	// Runtime delegates to the Go runtime's assembly bytes.IndexByte.
	Runtime
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Tiered:
		return "tiered"
	case Scalar:
		return "scalar"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tiered":
		return Tiered, true
	case "scalar":
		return Scalar, true
	case "runtime":
		return Runtime, true
	default:
		return Tiered, false
	}
}

// KernelEnv names the environment variable that overrides kernel selection.
const KernelEnv = "FASTSPLIT_KERNEL"

// Package-level state - initialized once at package init.
var (
	// activeISA is the detected instruction set.
	activeISA ISA

	// activeKernel is the kernel used by SegmentLen.
	activeKernel Kernel

	// hasOverride is true if FASTSPLIT_KERNEL was set to a valid kernel.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasASIMD    bool // ARM64 NEON
	hasSVE2     bool // ARM64 SVE2
	hasAVX2     bool // x86-64 AVX2
	hasAVX512F  bool // x86-64 AVX-512 Foundation
	hasAVX512BW bool // x86-64 AVX-512 Byte/Word
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA = selectBestISA()

	activeKernel = Tiered
	if override := os.Getenv(KernelEnv); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			activeKernel = k
		}
	}
	kernelSegmentLen = KernelFunc(activeKernel)
}

// selectBestISA chooses the widest ISA reported for the current platform.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		if hasSVE2 {
			return SVE2
		}
		if hasASIMD {
			return NEON
		}
	case "amd64":
		// Byte compares need BW on top of Foundation.
		if hasAVX512F && hasAVX512BW {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}
	return Generic
}

// ActiveISA returns the detected ISA.
func ActiveISA() ISA {
	return activeISA
}

// ActiveKernel returns the kernel used by SegmentLen.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if FASTSPLIT_KERNEL selected the kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}

// HasSVE2 returns true if ARM64 SVE2 is available.
func HasSVE2() bool {
	return hasSVE2
}

// HasAVX2 returns true if x86-64 AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if x86-64 AVX-512 (F+BW) is available.
func HasAVX512() bool {
	return hasAVX512F && hasAVX512BW
}
