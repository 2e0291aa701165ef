package catalog

import (
	"crylauncher/internal/arch"
	"crylauncher/internal/mempatch"
)

// capabilities of CryNetwork.dll
const (
	// EnablePreordered unlocks the advantages of the pre-ordered version
	// for everyone, on both server and client side.
	EnablePreordered mempatch.Capability = "EnablePreordered"

	// AllowSameCDKeys prevents the server from kicking players that
	// share one CD key.
	AllowSameCDKeys mempatch.Capability = "AllowSameCDKeys"

	// FixInternetConnect allows connecting to Internet servers without
	// a GameSpy account.
	FixInternetConnect mempatch.Capability = "FixInternetConnect"

	// FixFileCheckCrash fixes the sporadic crash when the file check
	// (sv_cheatProtection) is enabled, on both client and server side.
	FixFileCheckCrash mempatch.Capability = "FixFileCheckCrash"

	// DisableServerProfile disables creation of the "server_profile.txt"
	// file, the 64-bit version never creates it.
	DisableServerProfile mempatch.Capability = "DisableServerProfile"
)

// Crysis Wars does not have a pre-ordered version, build 5879 stores
// the flag at 0xFA68 instead of 0xFA70.
var enablePreordered = variants{
	arch.AMD64: builds{
		5767: {mem(0x17F0C7, 0xC6, 0x83, 0x70, 0xFA, 0x00, 0x00, 0x01)}, // mov byte ptr ds:[rbx+0xFA70], 0x1
		5879: {mem(0x1765F0, 0xC6, 0x83, 0x68, 0xFA, 0x00, 0x00, 0x01)},
		6115: {mem(0x17C077, 0xC6, 0x83, 0x70, 0xFA, 0x00, 0x00, 0x01)},
		6156: {mem(0x17C377, 0xC6, 0x83, 0x70, 0xFA, 0x00, 0x00, 0x01)},
	},
	arch.I386: builds{
		5767: {mem(0x42C10, 0xC6, 0x83, 0xC8, 0xF3, 0x00, 0x00, 0x01)}, // mov byte ptr ds:[ebx+0xF3C8], 0x1
		5879: {mem(0x412FD, 0xC6, 0x83, 0xC8, 0xF3, 0x00, 0x00, 0x01)},
		6115: {mem(0x430A8, 0xC6, 0x83, 0xC8, 0xF3, 0x00, 0x00, 0x01)},
		6156: {mem(0x43188, 0xC6, 0x83, 0xC8, 0xF3, 0x00, 0x00, 0x01)},
	},
}

var allowSameCDKeys = variants{
	arch.AMD64: builds{
		5767: {nop(0xE4858, 0x47)},
		5879: {nop(0xE5628, 0x47)},
		6115: {nop(0xE0188, 0x47)},
		6156: {nop(0xE0328, 0x47)},
		6566: {nop(0xE9034, 0x6B)},
		6586: {nop(0xE0838, 0x47)},
		6627: {nop(0xDFE48, 0x47)},
		6670: {nop(0xDFE48, 0x47)},
		6729: {nop(0xDFE48, 0x47)},
	},
	arch.I386: builds{
		5767: {nop(0x608CE, 0x4)},
		5879: {nop(0x5DE79, 0x4)},
		6115: {nop(0x60EF2, 0x4)},
		6156: {nop(0x606A5, 0x4)},
		6527: {nop(0x60768, 0x4)},
		6566: {nop(0x73F90, 0x4)},
		6586: {nop(0x60CFE, 0x4)},
		6627: {nop(0x60CFE, 0x4)},
		6670: {nop(0x60CFE, 0x4)},
		6729: {nop(0x60CF9, 0x4)},
	},
}

var fixInternetConnect = variants{
	arch.AMD64: builds{
		5767: {nop(0x18C716, 0x18)},
		5879: {nop(0x184136, 0x18)},
		6115: {nop(0x189596, 0x18)},
		6156: {nop(0x189896, 0x18)},
		6566: {nop(0x19602B, 0x18)},
		6586: {nop(0x18B0A6, 0x18)},
		6627: {nop(0x18B0B6, 0x18)},
		6670: {nop(0x18B0B6, 0x18)},
		6729: {nop(0x18B0B6, 0x18)},
	},
	arch.I386: builds{
		5767: {nop(0x3F4B5, 0xD)},
		5879: {nop(0x3DBCC, 0xD)},
		6115: {nop(0x3FA9C, 0xD)},
		6156: {nop(0x3FB7C, 0xD)},
		6527: {nop(0x3FB77, 0xD)},
		6566: {nop(0x50892, 0xD)},
		6586: {nop(0x3FF87, 0xD)},
		6627: {nop(0x3FF87, 0xD)},
		6670: {nop(0x3FF87, 0xD)},
		6729: {nop(0x3FF87, 0xD)},
	},
}

// 32-bit replacement of the broken reference counting
var fileCheckClient32 = []byte{
	0x8B, 0x4D, 0xC0, // mov ecx, dword ptr ss:[ebp-0x40]
	0xFF, 0x49, 0xF4, // dec dword ptr ds:[ecx-0xC]
	0x8B, 0x4D, 0xBC, // mov ecx, dword ptr ss:[ebp-0x44]
	0x89, 0x4D, 0xC0, // mov dword ptr ss:[ebp-0x40], ecx
}

var fileCheckServer32 = []byte{
	0x90,             // nop
	0x90,             // nop
	0xEB, 0x02,       // jmp over the zeroing
	0x33, 0xC0,       // xor eax, eax
	0x8B, 0x4F, 0x04, // mov ecx, dword ptr ds:[edi+0x4]
	0xFF, 0x49, 0xF4, // dec dword ptr ds:[ecx-0xC]
	0x8B, 0x0F,       // mov ecx, dword ptr ds:[edi]
	0x89, 0x4F, 0x04, // mov dword ptr ds:[edi+0x4], ecx
	0x90,             // nop
	0x90,             // nop
	0x90,             // nop
}

// Crysis 1.1 (build 5879) does not have the file check.
var fixFileCheckCrash = variants{
	arch.AMD64: builds{
		5767: fileCheck64Ops(0x1540C1, 0x1540D9, 0x154411, 0x154429),
		6115: fileCheck64Ops(0x14F151, 0x14F169, 0x14F481, 0x14F499),
		6156: fileCheck64Ops(0x14F5B1, 0x14F5C9, 0x14F8E1, 0x14F8F9),
		6566: fileCheck64Ops(0x158991, 0x1589A9, 0x158CC1, 0x158CD9),
		6586: fileCheck64Ops(0x151571, 0x151589, 0x1518A1, 0x1518B9),
		6627: fileCheck64Ops(0x151301, 0x151319, 0x151641, 0x151659),
		6670: fileCheck64Ops(0x151301, 0x151319, 0x151641, 0x151659),
		6729: fileCheck64Ops(0x151301, 0x151319, 0x151641, 0x151659),
	},
	arch.I386: builds{
		5767: fileCheck32Ops(0x49E66, 0x49EB5, 0x49A7F, 0x30D62),
		6115: fileCheck32Ops(0x4A268, 0x4A2B7, 0x49E81, 0x30E1C),
		6156: fileCheck32Ops(0x4A34F, 0x4A39E, 0x49F68, 0x30E7B),
		6527: fileCheck32Ops(0x4A361, 0x4A3B0, 0x49F7A, 0x31123),
		6566: fileCheck32Ops(0x5B3A6, 0x5B3F5, 0x5ADE1, 0x3D633),
		6586: fileCheck32Ops(0x4A9B5, 0x4AA04, 0x4A3CB, 0x31333),
		6627: fileCheck32Ops(0x4A9B5, 0x4AA04, 0x4A3CB, 0x3141A),
		6670: fileCheck32Ops(0x4A9B5, 0x4AA04, 0x4A3CB, 0x3141A),
		6729: fileCheck32Ops(0x4A9B5, 0x4AA04, 0x4A3CB, 0x3141A),
	},
}

func fileCheck64Ops(clientA, clientB, serverA, serverB uintptr) ops {
	return ops{
		mem(clientA, 0x48, 0x89, 0x0A, 0x90),
		mem(clientB, 0x48, 0x89, 0x4A, 0x08),
		mem(serverA, 0x48, 0x89, 0x0A, 0x90),
		mem(serverB, 0x48, 0x89, 0x4A, 0x08),
	}
}

func fileCheck32Ops(clientNop, client, serverNop, server uintptr) ops {
	return ops{
		nop(clientNop, 0xC),
		mem(client, fileCheckClient32...),
		nop(serverNop, 0xC),
		mem(server, fileCheckServer32...),
	}
}

var disableServerProfile = variants{
	arch.I386: builds{
		5767: {nop(0x9F435, 0x5)},
		5879: {nop(0x9CA81, 0x5)},
		6115: {nop(0x9C665, 0x5)},
		6156: {nop(0x9BE2E, 0x5)},
		6527: {nop(0x9BEE6, 0x5)},
		6566: {nop(0xB3419, 0x5)},
		6586: {nop(0x9C4DC, 0x5)},
		6627: {nop(0x9C4DC, 0x5)},
		6670: {nop(0x9C4DC, 0x5)},
		6729: {nop(0x9C4D7, 0x5)},
	},
}
