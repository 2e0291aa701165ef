// +build windows

package winapi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// reference:
// https://docs.microsoft.com/en-us/windows/win32/api/winver/nf-winver-getfileversioninfow
// https://docs.microsoft.com/en-us/windows/win32/api/winver/nf-winver-verqueryvaluew

// FixedFileInfo implements the Microsoft VS_FIXEDFILEINFO type.
type FixedFileInfo struct {
	Signature        uint32
	StrucVersion     uint32
	FileVersionMS    uint32
	FileVersionLS    uint32
	ProductVersionMS uint32
	ProductVersionLS uint32
	FileFlagsMask    uint32
	FileFlags        uint32
	FileOS           uint32
	FileType         uint32
	FileSubtype      uint32
	FileDateMS       uint32
	FileDateLS       uint32
}

const fixedFileInfoSignature = 0xFEEF04BD

// FileVersion unpacks the four part file version number.
func (ffi *FixedFileInfo) FileVersion() (major, minor, tiny, patch int) {
	major = int(ffi.FileVersionMS >> 16)
	minor = int(ffi.FileVersionMS & 0xFFFF)
	tiny = int(ffi.FileVersionLS >> 16)
	patch = int(ffi.FileVersionLS & 0xFFFF)
	return
}

// GetFileVersion is used to read the fixed file version information
// from the version resource of an executable file.
func GetFileVersion(path string) (*FixedFileInfo, error) {
	const fn = "GetFileVersion"
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, newErrorf(fn, err, "invalid file path %q", path)
	}
	size, _, err := procGetFileVersionInfoSize.Call(uintptr(unsafe.Pointer(pathPtr)), 0)
	if size == 0 {
		return nil, newErrorf(fn, err, "no version resource in %q", path)
	}
	block := make([]byte, size)
	ret, _, err := procGetFileVersionInfo.Call(
		uintptr(unsafe.Pointer(pathPtr)), 0, size, uintptr(unsafe.Pointer(&block[0])),
	)
	if ret == 0 {
		return nil, newErrorf(fn, err, "failed to read version resource of %q", path)
	}
	rootPtr, err := windows.UTF16PtrFromString(`\`)
	if err != nil {
		return nil, newError(fn, "invalid root block path", err)
	}
	var (
		ffi    *FixedFileInfo
		ffiLen uint32
	)
	ret, _, err = procVerQueryValueW.Call(
		uintptr(unsafe.Pointer(&block[0])), uintptr(unsafe.Pointer(rootPtr)),
		uintptr(unsafe.Pointer(&ffi)), uintptr(unsafe.Pointer(&ffiLen)),
	)
	if ret == 0 || ffi == nil {
		return nil, newErrorf(fn, err, "no fixed file information in %q", path)
	}
	if ffi.Signature != fixedFileInfoSignature {
		return nil, newErrorf(fn, nil, "invalid fixed file information in %q", path)
	}
	info := *ffi // copy out of the version block before it is collected
	return &info, nil
}
