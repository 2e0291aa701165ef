// +build windows

package winapi

import (
	"golang.org/x/sys/windows"
)

var (
	modKernel32 = windows.NewLazySystemDLL("kernel32.dll")
	modVersion  = windows.NewLazySystemDLL("version.dll")
	modMsvcrt   = windows.NewLazySystemDLL("msvcrt.dll")

	procVirtualProtect         = modKernel32.NewProc("VirtualProtect")
	procGetModuleHandleW       = modKernel32.NewProc("GetModuleHandleW")
	procLoadLibraryW           = modKernel32.NewProc("LoadLibraryW")
	procFreeLibrary            = modKernel32.NewProc("FreeLibrary")
	procGetModuleFileNameW     = modKernel32.NewProc("GetModuleFileNameW")
	procGetFileVersionInfoSize = modVersion.NewProc("GetFileVersionInfoSizeW")
	procGetFileVersionInfo     = modVersion.NewProc("GetFileVersionInfoW")
	procVerQueryValueW         = modVersion.NewProc("VerQueryValueW")
	procVsnprintf              = modMsvcrt.NewProc("_vsnprintf")
)
