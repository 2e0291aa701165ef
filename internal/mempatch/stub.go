package mempatch

import (
	"math"

	"github.com/pkg/errors"

	"crylauncher/internal/convert"
)

// StubOperand is a resolved operand, Addr is encoded into the stub at
// Offset in ptrSize bytes, little endian.
type StubOperand struct {
	Offset int
	Addr   uintptr
}

// MakeStub is used to materialize a stub from a machine code template.
// The returned stub equals the template except for the operand slots,
// the template itself is never modified.
func MakeStub(template []byte, operands []StubOperand, ptrSize int) ([]byte, error) {
	if ptrSize != 4 && ptrSize != 8 {
		return nil, errors.Errorf("invalid pointer size: %d", ptrSize)
	}
	stub := make([]byte, len(template))
	copy(stub, template)
	for i := 0; i < len(operands); i++ {
		operand := operands[i]
		if operand.Offset < 0 || operand.Offset+ptrSize > len(template) {
			return nil, errors.Errorf(
				"operand slot [%d:%d] is outside the %d byte template",
				operand.Offset, operand.Offset+ptrSize, len(template),
			)
		}
		err := encodePointer(stub[operand.Offset:operand.Offset+ptrSize], operand.Addr)
		if err != nil {
			return nil, err
		}
	}
	return stub, nil
}

// encodePointer writes addr little endian, the length of dst selects
// the pointer width.
func encodePointer(dst []byte, addr uintptr) error {
	switch len(dst) {
	case 4:
		if uint64(addr) > math.MaxUint32 {
			return errors.Errorf("address 0x%X overflows the 32-bit pointer width", addr)
		}
		copy(dst, convert.LEUint32ToBytes(uint32(addr)))
	case 8:
		copy(dst, convert.LEUint64ToBytes(uint64(addr)))
	default:
		panic("mempatch: invalid pointer width")
	}
	return nil
}
