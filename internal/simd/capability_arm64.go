//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// ASIMD is mandatory on arm64 but the flag is still checked so that
	// emulators reporting a stripped feature set are handled.
	hasASIMD = cpu.ARM64.HasASIMD
	hasSVE2 = cpu.ARM64.HasSVE2
	initCapabilities()
}
