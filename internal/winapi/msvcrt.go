// +build windows

package winapi

import (
	"unsafe"
)

// VSNPrintf is used to expand a C format string with a va_list pointer
// that foreign code handed over, both stay untouched C memory and only
// the formatted result is copied into the returned string.
func VSNPrintf(format, args uintptr) string {
	buf := make([]byte, 4096)
	ret, _, _ := procVsnprintf.Call(
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)-1), format, args,
	)
	n := int(int32(ret))
	if n < 0 || n > len(buf)-1 {
		n = len(buf) - 1
	}
	return string(buf[:n])
}
