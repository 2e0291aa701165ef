package memory

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"crylauncher/internal/arch"
)

func TestProcess_FillNop(t *testing.T) {
	mem := NewProcess()
	buf := make([]byte, 64)
	addr := uintptr(unsafe.Pointer(&buf[8]))

	err := mem.FillNop(addr, 4)
	require.NoError(t, err)

	for i := 8; i < 12; i++ {
		require.Equal(t, arch.NOP, buf[i])
	}
	require.Equal(t, byte(0), buf[7])
	require.Equal(t, byte(0), buf[12])

	t.Run("invalid size", func(t *testing.T) {
		err := mem.FillNop(addr, 0)
		require.Error(t, err)
	})
}

func TestProcess_FillMem(t *testing.T) {
	mem := NewProcess()
	buf := make([]byte, 64)
	addr := uintptr(unsafe.Pointer(&buf[16]))

	err := mem.FillMem(addr, []byte{0xEB, 0x08, 0xC3})
	require.NoError(t, err)

	require.Equal(t, []byte{0xEB, 0x08, 0xC3}, buf[16:19])
	require.Equal(t, byte(0), buf[15])
	require.Equal(t, byte(0), buf[19])

	t.Run("no data", func(t *testing.T) {
		err := mem.FillMem(addr, nil)
		require.Error(t, err)
	})
}

func TestProcess_FillMem_Idempotent(t *testing.T) {
	mem := NewProcess()
	buf := make([]byte, 32)
	addr := uintptr(unsafe.Pointer(&buf[0]))

	for i := 0; i < 2; i++ {
		err := mem.FillMem(addr, []byte{0x01, 0x02, 0x03, 0x04})
		require.NoError(t, err)
		require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf[:4])
	}
}

func TestProcess_ReadPointers(t *testing.T) {
	mem := NewProcess()
	table := []uintptr{0x2000, 0x2010, 0x2020, 0x2030}
	addr := uintptr(unsafe.Pointer(&table[0]))

	entries, err := mem.ReadPointers(addr, len(table))
	require.NoError(t, err)
	require.Equal(t, table, entries)

	// the returned entries are a copy
	entries[0] = 0xDEAD
	require.Equal(t, uintptr(0x2000), table[0])

	t.Run("invalid count", func(t *testing.T) {
		entries, err := mem.ReadPointers(addr, 0)
		require.Error(t, err)
		require.Nil(t, entries)
	})
}

func TestProcess_WriteInvalidAddress(t *testing.T) {
	// the zero page is never mapped, the protection change fails
	// before anything is written
	mem := NewProcess()

	err := mem.FillNop(0, 4)
	require.Error(t, err)
	t.Log(err)

	err = mem.FillMem(0, []byte{0x90})
	require.Error(t, err)
	t.Log(err)
}
