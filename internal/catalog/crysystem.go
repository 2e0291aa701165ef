package catalog

import (
	"crylauncher/internal/arch"
	"crylauncher/internal/mempatch"
)

// capabilities of CrySystem.dll
const (
	// RemoveSecuROM disables the SecuROM checks in the 64-bit
	// CrySystem DLL, the 32-bit one has none.
	RemoveSecuROM mempatch.Capability = "RemoveSecuROM"

	// AllowDX9VeryHighSpec allows Very High settings in DX9 mode,
	// Crysis Wars 1.4+ already allows them.
	AllowDX9VeryHighSpec mempatch.Capability = "AllowDX9VeryHighSpec"

	// AllowMultipleInstances allows running multiple game instances at
	// once, the first instance check is normally done in the launcher.
	AllowMultipleInstances mempatch.Capability = "AllowMultipleInstances"

	// UnhandledExceptions prevents the engine from installing its own
	// broken unhandled exception handler.
	UnhandledExceptions mempatch.Capability = "UnhandledExceptions"

	// HookError redirects the engine fatal error handler into the
	// registered one.
	HookError mempatch.Capability = "HookError"

	// Disable3DNow clears the 3DNow! flag from the default processor
	// feature flags, it fixes the crash of 32-bit Crysis on modern
	// AMD processors.
	Disable3DNow mempatch.Capability = "Disable3DNow"
)

var removeSecuROM = variants{
	arch.AMD64: builds{
		5767: {nop(0x4659E, 0x16)},
		5879: {nop(0x47B6E, 0x16)},
		6115: {nop(0x46FFD, 0x16)},
		6156: {nop(0x470B9, 0x16)},
	},
}

var allowDX9VeryHighSpec = variants{
	arch.AMD64: builds{
		5767: {nop(0x45C31, 0x54)},
		5879: {nop(0x47201, 0x54)},
		6115: {nop(0x46690, 0x54)},
		6156: {nop(0x4674C, 0x54)},
		6566: {nop(0x4D7B5, 0x54)},
		6586: {nop(0x47DBB, 0x54)},
		6627: {nop(0x4A90B, 0x54)},
	},
	arch.I386: builds{
		5767: {nop(0x59F08, 0x4B)},
		5879: {nop(0x5A488, 0x4B)},
		6115: {nop(0x5A268, 0x4B)},
		6156: {nop(0x59DA8, 0x4B)},
		6527: {nop(0x5A778, 0x4B)},
		6566: {nop(0x5D1A9, 0x4B)},
		6586: {nop(0x5A659, 0x4B)},
		6627: {nop(0x5B5E9, 0x4B)},
	},
}

var allowMultipleInstances = variants{
	arch.AMD64: builds{
		5767: {nop(0x420DF, 0x68)},
		5879: {nop(0x436AF, 0x68)},
		6115: {nop(0x42B5F, 0x68)},
		6156: {nop(0x42BFF, 0x68)},
		6566: {nop(0x49D1F, 0x68)},
		6586: {nop(0x4420F, 0x68)},
		6627: {nop(0x46D5F, 0x68)},
		6670: {nop(0x46EEF, 0x68)},
		6729: {nop(0x46EEF, 0x68)},
	},
	arch.I386: builds{
		5767: {nop(0x57ABF, 0x58)},
		5879: {nop(0x5802F, 0x58)},
		6115: {nop(0x57E1F, 0x58)},
		6156: {nop(0x5794F, 0x58)},
		6527: {nop(0x5831F, 0x58)},
		6566: {nop(0x5AC4F, 0x58)},
		6586: {nop(0x5834F, 0x58)},
		6627: {nop(0x592DF, 0x58)},
		6670: {nop(0x595CF, 0x58)},
		6729: {nop(0x595DF, 0x58)},
	},
}

var unhandledExceptions = variants{
	arch.AMD64: builds{
		5767: {nop(0x22986, 0x6), nop(0x22992, 0x7), nop(0x45C8A, 0x16)},
		5879: {nop(0x232C6, 0x6), nop(0x232D2, 0x7), nop(0x4725A, 0x16)},
		6115: {nop(0x22966, 0x6), nop(0x22972, 0x7), nop(0x466E9, 0x16)},
		6156: {nop(0x22946, 0x6), nop(0x22952, 0x7), nop(0x467A5, 0x16)},
		6566: {nop(0x298AE, 0x6), nop(0x298BA, 0x7), nop(0x4D80E, 0x16)},
		6586: {nop(0x24026, 0x6), nop(0x24032, 0x7), nop(0x47E14, 0x16)},
		6627: {nop(0x25183, 0x6), nop(0x2518F, 0x7), nop(0x4A964, 0x16)},
		6670: {nop(0x253B3, 0x6), nop(0x253BF, 0x7), nop(0x4AAA0, 0x16)},
		6729: {nop(0x253B3, 0x6), nop(0x253BF, 0x7), nop(0x4AAA0, 0x16)},
	},
	arch.I386: builds{
		5767: {nop(0x182B7, 0x5), nop(0x182C2, 0xC), nop(0x59F58, 0x13)},
		5879: {nop(0x18437, 0x5), nop(0x18442, 0xC), nop(0x5A4D8, 0x13)},
		6115: {nop(0x18217, 0x5), nop(0x18222, 0xC), nop(0x5A2B8, 0x13)},
		6156: {nop(0x17D67, 0x5), nop(0x17D72, 0xC), nop(0x59DF8, 0x13)},
		6527: {nop(0x18767, 0x5), nop(0x18772, 0xC), nop(0x5A7C8, 0x13)},
		6566: {nop(0x1AD57, 0x5), nop(0x1AD62, 0xC), nop(0x5D1F9, 0x13)},
		6586: {nop(0x18A27, 0x5), nop(0x18A32, 0xC), nop(0x5A6A9, 0x13)},
		6627: {nop(0x19327, 0x5), nop(0x19332, 0xC), nop(0x5B639, 0x13)},
		6670: {nop(0x19607, 0x5), nop(0x19612, 0xC), nop(0x5B8DC, 0x13)},
		6729: {nop(0x19617, 0x5), nop(0x19622, 0xC), nop(0x5B8EC, 0x13)},
	},
}

// errorHook64 converts the engine's thiscall error handler into a
// plain call of the registered handler, the call target is encoded
// into the slot at byte 29.
var errorHook64 = []byte{
	0x48, 0x89, 0x54, 0x24, 0x10, // mov qword ptr ss:[rsp+0x10], rdx
	0x4C, 0x89, 0x44, 0x24, 0x18, // mov qword ptr ss:[rsp+0x18], r8
	0x4C, 0x89, 0x4C, 0x24, 0x20, // mov qword ptr ss:[rsp+0x20], r9
	0x48, 0x83, 0xEC, 0x28, // sub rsp, 0x28
	0x48, 0x8B, 0xCA, // mov rcx, rdx
	0x48, 0x8D, 0x54, 0x24, 0x40, // lea rdx, qword ptr ss:[rsp+0x40]
	0x48, 0xB8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // mov rax, 0x0
	0xFF, 0xD0, // call rax
	0x48, 0x83, 0xC4, 0x28, // add rsp, 0x28
	0xC3, // ret
}

// errorHook32 does the same for the cdecl handler, the slot is at
// byte 11.
var errorHook32 = []byte{
	0x8B, 0x4C, 0x24, 0x08, // mov ecx, dword ptr ss:[esp+0x8]
	0x8D, 0x44, 0x24, 0x0C, // lea eax, dword ptr ss:[esp+0xC]
	0x50, // push eax
	0x51, // push ecx
	0xB8, 0x00, 0x00, 0x00, 0x00, // mov eax, 0x0
	0xFF, 0xD0, // call eax
	0x83, 0xC4, 0x08, // add esp, 0x8
	0xC3, // ret
}

const (
	errorHookSlot64 = 29
	errorHookSlot32 = 11
)

var hookError = variants{
	arch.AMD64: builds{
		5767: {stub(0x52180, errorHook64, errorHookSlot64)},
		5879: {stub(0x53850, errorHook64, errorHookSlot64)},
		6115: {stub(0x52D50, errorHook64, errorHookSlot64)},
		6156: {stub(0x52D00, errorHook64, errorHookSlot64)},
		6566: {stub(0x59A90, errorHook64, errorHookSlot64)},
		6586: {stub(0x543F0, errorHook64, errorHookSlot64)},
		6627: {stub(0x570E0, errorHook64, errorHookSlot64)},
		6670: {stub(0x571A0, errorHook64, errorHookSlot64)},
		6729: {stub(0x571A0, errorHook64, errorHookSlot64)},
	},
	arch.I386: builds{
		5767: {stub(0x655C0, errorHook32, errorHookSlot32)},
		5879: {stub(0x65C50, errorHook32, errorHookSlot32)},
		6115: {stub(0x65920, errorHook32, errorHookSlot32)},
		6156: {stub(0x63290, errorHook32, errorHookSlot32)},
		6527: {stub(0x63F90, errorHook32, errorHookSlot32)},
		6566: {stub(0x668A0, errorHook32, errorHookSlot32)},
		6586: {stub(0x63C90, errorHook32, errorHookSlot32)},
		6627: {stub(0x64C20, errorHook32, errorHookSlot32)},
		6670: {stub(0x64D30, errorHook32, errorHookSlot32)},
		6729: {stub(0x64D40, errorHook32, errorHookSlot32)},
	},
}

// 0x18 is the default processor feature flags without the CPUF_3DNOW
// flag.
var disable3DNow = variants{
	arch.AMD64: builds{
		5767: {mem(0xA1AF, 0x18)},
		5879: {mem(0xA0FF, 0x18)},
		6115: {mem(0xA0BF, 0x18)},
		6156: {mem(0xA0FF, 0x18)},
		6566: {mem(0xAD3F, 0x18)},
		6586: {mem(0xA32F, 0x18)},
		6627: {mem(0xA26F, 0x18)},
		6670: {mem(0xA32F, 0x18)},
		6729: {mem(0xA32F, 0x18)},
	},
	arch.I386: builds{
		5767: {mem(0x9432, 0x18)},
		5879: {mem(0x9472, 0x18)},
		6115: {mem(0x9412, 0x18)},
		6156: {mem(0x93E2, 0x18)},
		6527: {mem(0x9472, 0x18)},
		6566: {mem(0x9942, 0x18)},
		6586: {mem(0x93D2, 0x18)},
		6627: {mem(0x9402, 0x18)},
		6670: {mem(0x9412, 0x18)},
		6729: {mem(0x9412, 0x18)},
	},
}
