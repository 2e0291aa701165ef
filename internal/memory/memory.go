package memory

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"

	"crylauncher/internal/arch"
)

// Process mutates memory of the running process directly, it is the
// only code that is allowed to write into a target image. It
// implements the mempatch.Memory interface. Every write makes the
// covered pages writable first, see protect.go files about how the
// previous protection is handled on each platform.
type Process struct{}

// NewProcess is used to create a memory accessor for this process.
func NewProcess() *Process {
	return new(Process)
}

// FillNop is used to overwrite size bytes at addr with the single
// byte no-op opcode.
func (p *Process) FillNop(addr uintptr, size int) error {
	if size < 1 {
		return errors.Errorf("FillNop: invalid size %d at 0x%X", size, addr)
	}
	data := make([]byte, size)
	for i := 0; i < size; i++ {
		data[i] = arch.NOP
	}
	err := p.write(addr, data)
	if err != nil {
		return errors.WithMessagef(err, "FillNop: failed to fill memory at 0x%X", addr)
	}
	return nil
}

// FillMem is used to overwrite bytes at addr with data.
func (p *Process) FillMem(addr uintptr, data []byte) error {
	if len(data) == 0 {
		return errors.Errorf("FillMem: no data for memory at 0x%X", addr)
	}
	err := p.write(addr, data)
	if err != nil {
		return errors.WithMessagef(err, "FillMem: failed to fill memory at 0x%X", addr)
	}
	return nil
}

// ReadPointers is used to read n native pointer sized entries
// beginning at addr. Code and data pages stay readable, so reading
// needs no protection change.
func (p *Process) ReadPointers(addr uintptr, n int) ([]uintptr, error) {
	if n < 1 {
		return nil, errors.Errorf("ReadPointers: invalid count %d at 0x%X", n, addr)
	}
	entries := make([]uintptr, n)
	copy(entries, rawPointers(addr, n))
	return entries, nil
}

func (p *Process) write(addr uintptr, data []byte) error {
	size := uintptr(len(data))
	restore, err := makeWritable(addr, size)
	if err != nil {
		return err
	}
	copy(rawBytes(addr, len(data)), data)
	return restore()
}

// rawBytes views foreign memory as a byte slice, the memory is not
// managed by the Go runtime and must outlive the returned slice.
func rawBytes(addr uintptr, n int) []byte { // #nosec
	sh := reflect.SliceHeader{Data: addr, Len: n, Cap: n}
	return *(*[]byte)(unsafe.Pointer(&sh))
}

func rawPointers(addr uintptr, n int) []uintptr { // #nosec
	sh := reflect.SliceHeader{Data: addr, Len: n, Cap: n}
	return *(*[]uintptr)(unsafe.Pointer(&sh))
}
