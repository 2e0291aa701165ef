package catalog

import (
	"crylauncher/internal/arch"
	"crylauncher/internal/mempatch"
)

// target DLL file names
const (
	CryAction      = "CryAction.dll"
	CryGame        = "CryGame.dll"
	CryNetwork     = "CryNetwork.dll"
	CrySystem      = "CrySystem.dll"
	CryRenderD3D10 = "CryRenderD3D10.dll"
	CryRenderNULL  = "CryRenderNULL.dll"
)

// game builds that patch tables exist for, Crysis up to build 6156
// and Crysis Wars from build 6527 on
var knownBuilds = []int{5767, 5879, 6115, 6156, 6527, 6566, 6586, 6627, 6670, 6729}

// KnownBuilds is used to list the game builds that patch tables exist for.
func KnownBuilds() []int {
	builds := make([]int, len(knownBuilds))
	copy(builds, knownBuilds)
	return builds
}

// IsKnownBuild is used to check the game build before any patch is applied,
// offsets are only valid for the exact builds they were made for.
func IsKnownBuild(build int) bool {
	for i := 0; i < len(knownBuilds); i++ {
		if knownBuilds[i] == build {
			return true
		}
	}
	return false
}

// Target groups the capabilities that patch one DLL, in apply order.
type Target struct {
	Name         string
	Capabilities []mempatch.Capability
}

// Targets is used to enumerate all known target DLLs with their
// capabilities in apply order.
func Targets() []Target {
	return []Target{
		{CryAction, []mempatch.Capability{
			AllowDX9ImmersiveMultiplayer,
			DisableGameplayStats,
		}},
		{CryGame, []mempatch.Capability{
			DisableIntros,
			CanJoinDX10Servers,
			EnableDX10Menu,
		}},
		{CryNetwork, []mempatch.Capability{
			EnablePreordered,
			AllowSameCDKeys,
			FixInternetConnect,
			FixFileCheckCrash,
			DisableServerProfile,
		}},
		{CrySystem, []mempatch.Capability{
			RemoveSecuROM,
			AllowDX9VeryHighSpec,
			AllowMultipleInstances,
			UnhandledExceptions,
			HookError,
			Disable3DNow,
		}},
		{CryRenderD3D10, []mempatch.Capability{
			FixLowRefreshRateBug,
		}},
		{CryRenderNULL, []mempatch.Capability{
			DisableDebugRenderer,
		}},
	}
}

// Default is used to get the shared patch catalog with the entries of
// every known capability. The caller must not modify it.
func Default() mempatch.Catalog {
	return defaultCatalog
}

var defaultCatalog = mempatch.Catalog{
	AllowDX9ImmersiveMultiplayer: allowDX9ImmersiveMultiplayer,
	DisableGameplayStats:         disableGameplayStats,
	DisableIntros:                disableIntros,
	CanJoinDX10Servers:           canJoinDX10Servers,
	EnableDX10Menu:               enableDX10Menu,
	EnablePreordered:             enablePreordered,
	AllowSameCDKeys:              allowSameCDKeys,
	FixInternetConnect:           fixInternetConnect,
	FixFileCheckCrash:            fixFileCheckCrash,
	DisableServerProfile:         disableServerProfile,
	RemoveSecuROM:                removeSecuROM,
	AllowDX9VeryHighSpec:         allowDX9VeryHighSpec,
	AllowMultipleInstances:       allowMultipleInstances,
	UnhandledExceptions:          unhandledExceptions,
	HookError:                    hookError,
	Disable3DNow:                 disable3DNow,
	FixLowRefreshRateBug:         fixLowRefreshRateBug,
	DisableDebugRenderer:         disableDebugRenderer,
}

// short hands that keep the patch tables close to the raw offsets
type (
	ops      = []mempatch.Op
	builds   = map[int]ops
	variants = map[arch.Variant]builds
)

func nop(offset uintptr, size int) mempatch.Op {
	return mempatch.NopFill{Offset: offset, Size: size}
}

func mem(offset uintptr, data ...byte) mempatch.Op {
	buf := make([]byte, len(data))
	copy(buf, data)
	return mempatch.Overwrite{Offset: offset, Data: buf}
}

func stub(offset uintptr, template []byte, slot int) mempatch.Op {
	return mempatch.Trampoline{
		Offset:   offset,
		Template: template,
		Operands: []mempatch.Operand{{Offset: slot, Ref: mempatch.ErrorHandler}},
	}
}

func vtbl(offset uintptr, keep, total int) mempatch.Op {
	return mempatch.VTableNeuter{Offset: offset, Keep: keep, Total: total}
}
