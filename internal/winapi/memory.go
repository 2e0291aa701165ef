// +build windows

package winapi

import (
	"unsafe"
)

// reference:
// https://docs.microsoft.com/en-us/windows/win32/api/memoryapi/nf-memoryapi-virtualprotect

// VirtualProtect is used to change the protection on a region of committed
// pages in the virtual address space of the calling process. // #nosec
func VirtualProtect(addr, size uintptr, new uint32, old *uint32) error {
	const name = "VirtualProtect"
	ret, _, err := procVirtualProtect.Call(
		addr, size, uintptr(new), uintptr(unsafe.Pointer(old)),
	)
	if ret == 0 {
		return newErrorf(name, err, "failed to change committed pages at 0x%X", addr)
	}
	return nil
}
