//go:build arm64 && !noasm

package simd

// init sets the kernel pointers based on the active ISA.
// This runs after capability_arm64.go init() has detected CPU features
// and selected the active ISA (files initialize in name order).
func init() {
	if activeISA == NEON {
		setHardwareKernels()
	}
}
