package memory

import (
	"golang.org/x/sys/windows"

	"crylauncher/internal/winapi"
)

// makeWritable is used to grant write permission to the pages that
// cover [addr, addr+size). The returned function restores the exact
// previous protection, VirtualProtect records it for the whole range.
func makeWritable(addr, size uintptr) (func() error, error) {
	var old uint32
	err := winapi.VirtualProtect(addr, size, windows.PAGE_EXECUTE_READWRITE, &old)
	if err != nil {
		return nil, err
	}
	restore := func() error {
		var dummy uint32
		return winapi.VirtualProtect(addr, size, old, &dummy)
	}
	return restore, nil
}
