package convert

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// BEUint16ToBytes is used to convert uint16 to bytes with big endian.
func BEUint16ToBytes(Uint16 uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, Uint16)
	return b
}

// BEUint32ToBytes is used to convert uint32 to bytes with big endian.
func BEUint32ToBytes(Uint32 uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, Uint32)
	return b
}

// BEUint64ToBytes is used to convert uint64 to bytes with big endian.
func BEUint64ToBytes(Uint64 uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, Uint64)
	return b
}

// BEBytesToUint16 is used to convert bytes to uint16 with big endian.
func BEBytesToUint16(Bytes []byte) uint16 {
	return binary.BigEndian.Uint16(Bytes)
}

// BEBytesToUint32 is used to convert bytes to uint32 with big endian.
func BEBytesToUint32(Bytes []byte) uint32 {
	return binary.BigEndian.Uint32(Bytes)
}

// BEBytesToUint64 is used to convert bytes to uint64 with big endian.
func BEBytesToUint64(Bytes []byte) uint64 {
	return binary.BigEndian.Uint64(Bytes)
}

// LEUint16ToBytes is used to convert uint16 to bytes with little endian.
func LEUint16ToBytes(Uint16 uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, Uint16)
	return b
}

// LEUint32ToBytes is used to convert uint32 to bytes with little endian.
func LEUint32ToBytes(Uint32 uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, Uint32)
	return b
}

// LEUint64ToBytes is used to convert uint64 to bytes with little endian.
func LEUint64ToBytes(Uint64 uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, Uint64)
	return b
}

// LEBytesToUint16 is used to convert bytes to uint16 with little endian.
func LEBytesToUint16(Bytes []byte) uint16 {
	return binary.LittleEndian.Uint16(Bytes)
}

// LEBytesToUint32 is used to convert bytes to uint32 with little endian.
func LEBytesToUint32(Bytes []byte) uint32 {
	return binary.LittleEndian.Uint32(Bytes)
}

// LEBytesToUint64 is used to convert bytes to uint64 with little endian.
func LEBytesToUint64(Bytes []byte) uint64 {
	return binary.LittleEndian.Uint64(Bytes)
}

// OutputBytes is used to print byte slice, each line is 8 bytes.
func OutputBytes(b []byte) string {
	return OutputBytesWithSize(b, 8)
}

// OutputBytesWithSize is used to print byte slice.
//
// Output:
// ----one line----
// []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
// -----common-----
// []byte{
//		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
//		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
//      0x00, 0x00, 0x00, 0x00,
// }
// ----full line---
// []byte{
//		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
//		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
// }
func OutputBytesWithSize(b []byte, line int) string {
	const (
		begin = "[]byte{"
		end   = "}"
	)
	// special: empty data
	l := len(b)
	if l == 0 {
		return begin + end
	}
	if line < 1 {
		line = 1
	}
	// create builder
	builder := new(strings.Builder)
	builder.Grow(len(begin+end) + len("0x00, ")*l)
	// write begin string
	builder.WriteString("[]byte{")
	buf := make([]byte, 2)
	// special: one line
	if l <= line {
		for i := 0; i < l; i++ {
			hex.Encode(buf, []byte{b[i]})
			builder.WriteString("0x")
			builder.Write(bytes.ToUpper(buf))
			if i != l-1 {
				builder.WriteString(", ")
			}
		}
		builder.WriteString("}")
		return builder.String()
	}
	// write begin string
	var counter int // need new line
	builder.WriteString("\n")
	for i := 0; i < l; i++ {
		if counter == 0 {
			builder.WriteString("\t")
		}
		hex.Encode(buf, []byte{b[i]})
		builder.WriteString("0x")
		builder.Write(bytes.ToUpper(buf))
		counter++
		if counter == line {
			builder.WriteString(",\n")
			counter = 0
		} else {
			builder.WriteString(", ")
		}
	}
	// write end string
	if counter != 0 { // delete last space
		return builder.String()[:builder.Len()-1] + "\n}"
	}
	builder.WriteString("}")
	return builder.String()
}
