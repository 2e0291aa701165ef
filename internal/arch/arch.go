package arch

import (
	"fmt"
)

// NOP is the single byte no-operation opcode on x86,
// it is the same for the 32-bit and the 64-bit variant.
const NOP byte = 0x90

// Variant is the processor architecture variant of x86 machine code.
type Variant uint8

// about architecture variants
const (
	Invalid Variant = iota
	I386
	AMD64
)

// Parse is used to parse architecture variant from string.
func Parse(variant string) (Variant, error) {
	v := Invalid
	switch variant {
	case "386", "x86", "32":
		v = I386
	case "amd64", "x64", "64":
		v = AMD64
	default:
		return v, fmt.Errorf("unknown architecture variant: %s", variant)
	}
	return v, nil
}

// PointerSize is used to get the native pointer size in bytes.
func (v Variant) PointerSize() int {
	switch v {
	case I386:
		return 4
	case AMD64:
		return 8
	default:
		panic("arch: invalid architecture variant")
	}
}

func (v Variant) String() string {
	switch v {
	case I386:
		return "386"
	case AMD64:
		return "amd64"
	default:
		return fmt.Sprintf("invalid architecture variant: %d", uint8(v))
	}
}
