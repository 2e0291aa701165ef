package mempatch

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeStub(t *testing.T) {
	template := []byte{
		0x55, 0x89, 0xE5, 0x83, 0xEC, 0x08, 0xB8, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC3,
	}
	backup := make([]byte, len(template))
	copy(backup, template)

	t.Run("64-bit operand", func(t *testing.T) {
		operands := []StubOperand{{Offset: 7, Addr: 0x0102030405060708}}
		stub, err := MakeStub(template, operands, 8)
		require.NoError(t, err)
		expected := []byte{
			0x55, 0x89, 0xE5, 0x83, 0xEC, 0x08, 0xB8, 0x08,
			0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, 0xC3,
		}
		require.Equal(t, expected, stub)
	})

	t.Run("32-bit operand", func(t *testing.T) {
		operands := []StubOperand{{Offset: 7, Addr: 0x01020304}}
		stub, err := MakeStub(template, operands, 4)
		require.NoError(t, err)
		expected := []byte{
			0x55, 0x89, 0xE5, 0x83, 0xEC, 0x08, 0xB8, 0x04,
			0x03, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0xC3,
		}
		require.Equal(t, expected, stub)
	})

	t.Run("no operands", func(t *testing.T) {
		stub, err := MakeStub(template, nil, 8)
		require.NoError(t, err)
		require.Equal(t, template, stub)

		stub[0] = 0x00
		require.Equal(t, backup, template)
	})

	t.Run("template is never modified", func(t *testing.T) {
		operands := []StubOperand{{Offset: 0, Addr: 0xFFFFFFFF}}
		_, err := MakeStub(template, operands, 4)
		require.NoError(t, err)
		require.Equal(t, backup, template)
	})

	t.Run("operand slot outside template", func(t *testing.T) {
		operands := []StubOperand{{Offset: 9, Addr: 1}}
		stub, err := MakeStub(template, operands, 8)
		require.EqualError(t, err, "operand slot [9:17] is outside the 16 byte template")
		require.Nil(t, stub)
	})

	t.Run("negative operand offset", func(t *testing.T) {
		operands := []StubOperand{{Offset: -1, Addr: 1}}
		stub, err := MakeStub(template, operands, 4)
		require.Error(t, err)
		require.Nil(t, stub)
	})

	t.Run("invalid pointer size", func(t *testing.T) {
		stub, err := MakeStub(template, nil, 3)
		require.EqualError(t, err, "invalid pointer size: 3")
		require.Nil(t, stub)
	})

	t.Run("address overflows 32-bit width", func(t *testing.T) {
		if strconv.IntSize != 64 {
			t.Skip("needs a 64-bit host")
		}
		operands := []StubOperand{{Offset: 0, Addr: uintptr(1) << 32}}
		stub, err := MakeStub(template, operands, 4)
		require.Error(t, err)
		require.Nil(t, stub)
	})
}

func TestEncodePointer(t *testing.T) {
	t.Run("invalid width", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			t.Logf("\npanic in %s:\n%s\n", t.Name(), r)
		}()
		_ = encodePointer(make([]byte, 3), 1)
	})
}
