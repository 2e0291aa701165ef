package catalog

import (
	"crylauncher/internal/arch"
	"crylauncher/internal/mempatch"
)

// capabilities of the renderer DLLs
const (
	// FixLowRefreshRateBug prevents the DX10 renderer from picking the
	// lowest refresh rate available.
	FixLowRefreshRateBug mempatch.Capability = "FixLowRefreshRateBug"

	// DisableDebugRenderer gets rid of the wasteful hidden debug
	// renderer window with an OpenGL context in CryRenderNULL.
	DisableDebugRenderer mempatch.Capability = "DisableDebugRenderer"
)

var fixLowRefreshRateBug = variants{
	arch.AMD64: builds{
		5767: {nop(0x1C5ED5, 0x4)},
		5879: {nop(0x1C5DC5, 0x4)},
		6115: {nop(0x1C8B65, 0x4)},
		6156: {nop(0x1C8F45, 0x4)},
		6566: {nop(0x1BAA25, 0x4)},
		6586: {nop(0x1CA335, 0x4)},
		6627: {nop(0x1CA345, 0x4)},
		6670: {nop(0x1CA345, 0x4)},
		6729: {nop(0x1CA345, 0x4)},
	},
	arch.I386: builds{
		5767: {nop(0x16CE00, 0x6)},
		5879: {nop(0x16E390, 0x6)},
		6115: {nop(0x16F470, 0x6)},
		6156: {nop(0x16F3E0, 0x6)},
		6527: {nop(0x16F290, 0x6)},
		6566: {nop(0x1798D0, 0x6)},
		6586: {nop(0x16F110, 0x6)},
		6627: {nop(0x16F150, 0x6)},
		6670: {nop(0x16F170, 0x6)},
		6729: {nop(0x16F170, 0x6)},
	},
}

// The CNULLRenderAuxGeom vtable has 27 methods, SetRenderFlags and
// GetRenderFlags stay and every other method becomes SetRenderFlags,
// which is empty and returns nothing like all of them. The two nop
// fills disable debug renderer setup in the constructor and the
// destructor, the two overwrites disable the BeginFrame and EndFrame
// calls.
const (
	auxGeomVTableKeep  = 2
	auxGeomVTableTotal = 27
)

func debugRenderer64Ops(ctor, dtor, begin, end, vt uintptr) ops {
	return ops{
		nop(ctor, 0x175),
		nop(dtor, 0x35),
		mem(begin, 0xC3, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90), // ret and nop padding
		mem(end, 0xC3, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90),
		vtbl(vt, auxGeomVTableKeep, auxGeomVTableTotal),
	}
}

func debugRenderer32Ops(ctor uintptr, ctorSize int, dtor, begin, end, vt uintptr) ops {
	return ops{
		nop(ctor, ctorSize),
		nop(dtor, 0xE),
		mem(begin, 0xC3, 0x90, 0x90, 0x90, 0x90, 0x90), // ret and nop padding
		mem(end, 0xC3, 0x90, 0x90, 0x90, 0x90, 0x90),
		vtbl(vt, auxGeomVTableKeep, auxGeomVTableTotal),
	}
}

var disableDebugRenderer = variants{
	arch.AMD64: builds{
		5767: debugRenderer64Ops(0xD2B9, 0xD473, 0x16BE, 0x16D0, 0x97578),
		5879: debugRenderer64Ops(0xD489, 0xD393, 0x16CE, 0x16E0, 0x97538),
		6115: debugRenderer64Ops(0xD049, 0xD203, 0x16BE, 0x16D0, 0x974A8),
		6156: debugRenderer64Ops(0xD379, 0xD533, 0x16CE, 0x16E0, 0x97588),
		6566: debugRenderer64Ops(0xC332, 0xC4EC, 0x176E, 0x1780, 0x98918),
		6586: debugRenderer64Ops(0xCFC9, 0xD183, 0x16FE, 0x1710, 0x984B8),
		6627: debugRenderer64Ops(0xD369, 0xD523, 0x16FE, 0x1710, 0x984B8),
		6670: debugRenderer64Ops(0xD0D9, 0xD293, 0x16FE, 0x1710, 0x984B8),
		6729: debugRenderer64Ops(0xD0D9, 0xD293, 0x16FE, 0x1710, 0x984B8),
	},
	arch.I386: builds{
		5767: debugRenderer32Ops(0x1CF3E, 0x101, 0x1D051, 0x1895, 0x18A9, 0xA677C),
		5879: debugRenderer32Ops(0x1CF78, 0x101, 0x1CEFE, 0x1895, 0x18A9, 0xA6734),
		6115: debugRenderer32Ops(0x1CF4F, 0x101, 0x1D062, 0x1895, 0x18A9, 0xA6784),
		6156: debugRenderer32Ops(0x1CEE6, 0x101, 0x1CFF9, 0x1895, 0x18A9, 0xA778C),
		6527: debugRenderer32Ops(0x1CE41, 0x101, 0x1CF54, 0x189B, 0x18AF, 0xA779C),
		6566: debugRenderer32Ops(0x1D3D9, 0x10C, 0x1D4F7, 0x18A0, 0x18B4, 0xB078C),
		6586: debugRenderer32Ops(0x1CF67, 0x101, 0x1D07A, 0x18A0, 0x18B4, 0xA779C),
		6627: debugRenderer32Ops(0x1CF7C, 0x101, 0x1D08F, 0x18AD, 0x18C1, 0xA779C),
		6670: debugRenderer32Ops(0x1CF7C, 0x101, 0x1D08F, 0x18AD, 0x18C1, 0xA779C),
		6729: debugRenderer32Ops(0x1CF7C, 0x101, 0x1D08F, 0x18AD, 0x18C1, 0xA779C),
	},
}
