package mempatch

// Op is a single byte level edit inside a target image. Each operation
// describes the whole new content of its range, so applying the same
// operation twice gives the same bytes as applying it once.
type Op interface {
	Kind() string
}

// NopFill replaces Size bytes at Offset with single byte no-op opcodes.
type NopFill struct {
	Offset uintptr
	Size   int
}

// Kind implements the Op interface.
func (NopFill) Kind() string {
	return "nop fill"
}

// Overwrite replaces bytes at Offset with Data.
type Overwrite struct {
	Offset uintptr
	Data   []byte
}

// Kind implements the Op interface.
func (Overwrite) Kind() string {
	return "overwrite"
}

// AddrRef selects an externally supplied address that is only known at
// apply time, like the registered engine error handler.
type AddrRef uint8

// about address references
const (
	ErrorHandler AddrRef = 1 + iota
)

// Operand is a slot inside a trampoline template that receives an
// address in native pointer width, little endian.
type Operand struct {
	Offset int
	Ref    AddrRef
}

// Trampoline overwrites code at Offset with a materialized stub built
// from Template and Operands.
type Trampoline struct {
	Offset   uintptr
	Template []byte
	Operands []Operand
}

// Kind implements the Op interface.
func (Trampoline) Kind() string {
	return "trampoline"
}

// VTableNeuter reads Total pointer entries at Offset, keeps the first
// Keep entries and replaces the rest with the first entry, then writes
// the whole table back. The first entry must be a method that is safe
// to call in place of every neutered one.
type VTableNeuter struct {
	Offset uintptr
	Keep   int
	Total  int
}

// Kind implements the Op interface.
func (VTableNeuter) Kind() string {
	return "vtable neuter"
}
