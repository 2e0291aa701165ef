package mempatch

// Capability is the name of a behavior change that a group of patch
// operations implements, like "AllowSameCDKeys".
type Capability string

// Image is a loaded target module that patch operations are applied to.
// All operation offsets are relative to Base. Image is passed by value
// and never retained by the patcher.
type Image struct {
	Base uintptr
	Name string
}

// Memory is the only way the patcher touches target memory. The process
// implementation is in internal/memory, tests use fake implementations.
//
// ReadPointers reads n pointer sized entries beginning at addr, the
// entry width is the implementation's native pointer width.
type Memory interface {
	FillNop(addr uintptr, size int) error
	FillMem(addr uintptr, data []byte) error
	ReadPointers(addr uintptr, n int) ([]uintptr, error)
}
