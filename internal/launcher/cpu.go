package launcher

import (
	"github.com/klauspost/cpuid/v2"
)

// need3DNowFix reports whether the engine would enable its 3DNow!
// code paths on a processor that cannot execute them. The engine
// checks the vendor only, modern AMD processors dropped the
// instruction set and crash inside the 32-bit engine.
var need3DNowFix = func() bool {
	return cpuid.CPU.VendorID == cpuid.AMD && !cpuid.CPU.Supports(cpuid.AMD3DNOW)
}
