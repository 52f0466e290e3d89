package field

import "github.com/klauspost/cpuid/v2"

// FastWideningMultiplyAvailable reports whether the CPU this process is
// running on has a hardware 64x64->128 multiply/divide path. This package's
// mulMod always goes through math/bits.Mul64/Div64, which the Go compiler
// already lowers to the hardware MULQ/DIVQ instructions on every platform
// Go supports, so there is no alternate kernel to switch to here — the
// probe exists so a caller running a Montgomery or precomputed-table
// accelerator can log the capability it is relying on once.
func FastWideningMultiplyAvailable() bool {
	return cpuid.CPU.Supports(cpuid.ADX) || cpuid.CPU.Supports(cpuid.BMI2) || cpuid.CPU.Supports(cpuid.SSE2)
}
