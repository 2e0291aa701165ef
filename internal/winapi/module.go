// +build windows

package winapi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// reference:
// https://docs.microsoft.com/en-us/windows/win32/api/libloaderapi/nf-libloaderapi-getmodulehandlew
// https://docs.microsoft.com/en-us/windows/win32/api/libloaderapi/nf-libloaderapi-loadlibraryw

// GetModuleHandle is used to get a handle of a module that is already
// loaded into this process.
func GetModuleHandle(name string) (windows.Handle, error) {
	const fn = "GetModuleHandle"
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, newErrorf(fn, err, "invalid module name %q", name)
	}
	ret, _, err := procGetModuleHandleW.Call(uintptr(unsafe.Pointer(namePtr)))
	if ret == 0 {
		return 0, newErrorf(fn, err, "module %q is not loaded", name)
	}
	return windows.Handle(ret), nil
}

// LoadLibrary is used to load a module into this process.
func LoadLibrary(name string) (windows.Handle, error) {
	const fn = "LoadLibrary"
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, newErrorf(fn, err, "invalid module name %q", name)
	}
	ret, _, err := procLoadLibraryW.Call(uintptr(unsafe.Pointer(namePtr)))
	if ret == 0 {
		return 0, newErrorf(fn, err, "failed to load module %q", name)
	}
	return windows.Handle(ret), nil
}

// FreeLibrary is used to unload a module that LoadLibrary loaded.
func FreeLibrary(handle windows.Handle) error {
	const fn = "FreeLibrary"
	ret, _, err := procFreeLibrary.Call(uintptr(handle))
	if ret == 0 {
		return newError(fn, "failed to free module", err)
	}
	return nil
}

// GetModuleFileName is used to get the full path of a loaded module.
func GetModuleFileName(handle windows.Handle) (string, error) {
	const fn = "GetModuleFileName"
	buf := make([]uint16, windows.MAX_LONG_PATH)
	ret, _, err := procGetModuleFileNameW.Call(
		uintptr(handle), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)),
	)
	if ret == 0 {
		return "", newError(fn, "failed to get module file name", err)
	}
	return windows.UTF16ToString(buf[:ret]), nil
}
