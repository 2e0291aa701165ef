package catalog

import (
	"crylauncher/internal/arch"
	"crylauncher/internal/mempatch"
)

// capabilities of CryGame.dll
const (
	// DisableIntros disables the startup video ads.
	DisableIntros mempatch.Capability = "DisableIntros"

	// CanJoinDX10Servers prevents DX10 servers in the server list from
	// being grayed out when the game is running in DX9 mode.
	CanJoinDX10Servers mempatch.Capability = "CanJoinDX10Servers"

	// EnableDX10Menu forces the true value of the DX10 flag in Flash UI
	// scripts, it unlocks DX10 features in the "CREATE GAME" menu of a
	// DX9 game.
	EnableDX10Menu mempatch.Capability = "EnableDX10Menu"
)

var disableIntros = variants{
	arch.AMD64: builds{
		5767: {nop(0x2EDF9D, 0x10)},
		5879: {nop(0x2ED05D, 0x10)},
		6115: {nop(0x2F695D, 0x10)},
		6156: {nop(0x2F6F4D, 0x10)},
		6566: {nop(0x336402, 0x10)},
		6586: {nop(0x3274E2, 0x10)},
		6627: {nop(0x3275B2, 0x10)},
		6670: {nop(0x327CC2, 0x10)},
		6729: {nop(0x3291A2, 0x10)},
	},
	arch.I386: builds{
		5767: {nop(0x21A91D, 0xD), nop(0x21A92B, 0x2)},
		5879: {nop(0x21ACDD, 0xD), nop(0x21ACEB, 0x2)},
		6115: {nop(0x220CAD, 0xD), nop(0x220CBB, 0x2)},
		6156: {nop(0x220BFD, 0xD), nop(0x220C0B, 0x2)},
		6527: {nop(0x23C9F0, 0xC), nop(0x23C9FF, 0x2)},
		6566: {nop(0x24D101, 0xC), nop(0x24D110, 0x2)},
		6586: {nop(0x23D650, 0xC), nop(0x23D65F, 0x2)},
		6627: {nop(0x23D250, 0xC), nop(0x23D25F, 0x2)},
		6670: {nop(0x23D760, 0xC), nop(0x23D76F, 0x2)},
		6729: {nop(0x23EEE0, 0xC), nop(0x23EEEF, 0x2)},
	},
}

var canJoinDX10Servers = variants{
	arch.AMD64: builds{
		5767: {nop(0x327B3C, 0xF)},
		5879: {nop(0x32689C, 0xF)},
		6115: {nop(0x3343C1, 0x18)},
		6156: {nop(0x334791, 0x18)},
		6566: {nop(0x35BC57, 0x18)},
		6586: {nop(0x34B4F7, 0x18)},
		6627: {nop(0x34B097, 0x18)},
		6670: {nop(0x34B9A7, 0x18)},
		6729: {nop(0x34D047, 0x18)},
	},
	arch.I386: builds{
		5767: {nop(0x23A4BC, 0xA)},
		5879: {nop(0x23AB5C, 0xA)},
		6115: {nop(0x242CAC, 0xF)},
		6156: {nop(0x242F1C, 0xF)},
		6527: {nop(0x250E10, 0xF)},
		6566: {nop(0x262D50, 0xF)},
		6586: {nop(0x2514D0, 0xF)},
		6627: {nop(0x2510D0, 0xF)},
		6670: {nop(0x251960, 0xF)},
		6729: {nop(0x252E10, 0xF)},
	},
}

// both slots overwrite a flag load with "mov al, 0x1" and a nop
var enableDX10Menu = variants{
	arch.AMD64: builds{
		5767: {mem(0x2ECE24, 0xB0, 0x01, 0x90), mem(0x2ED3FE, 0xB0, 0x01, 0x90)},
		5879: {mem(0x2EBEE4, 0xB0, 0x01, 0x90), mem(0x2EC4BE, 0xB0, 0x01, 0x90)},
		6115: {mem(0x2F5792, 0xB0, 0x01, 0x90), mem(0x2F5DBC, 0xB0, 0x01, 0x90)},
		6156: {mem(0x2F5D7D, 0xB0, 0x01, 0x90), mem(0x2F63B7, 0xB0, 0x01, 0x90)},
		6566: {mem(0x3150C1, 0xB0, 0x01, 0x90), mem(0x3156F7, 0xB0, 0x01, 0x90)},
		6586: {mem(0x30AED1, 0xB0, 0x01, 0x90), mem(0x30B507, 0xB0, 0x01, 0x90)},
		6627: {mem(0x30AF91, 0xB0, 0x01, 0x90), mem(0x30B5C7, 0xB0, 0x01, 0x90)},
		6670: {mem(0x30B6A1, 0xB0, 0x01, 0x90), mem(0x30BCD7, 0xB0, 0x01, 0x90)},
		6729: {mem(0x30CBA1, 0xB0, 0x01, 0x90), mem(0x30D1D7, 0xB0, 0x01, 0x90)},
	},
	arch.I386: builds{
		5767: {mem(0x21A00E, 0xB0, 0x01, 0x90), mem(0x21A401, 0xB0, 0x01, 0x90)},
		5879: {mem(0x21A3CE, 0xB0, 0x01, 0x90), mem(0x21A7C1, 0xB0, 0x01, 0x90)},
		6115: {mem(0x22034F, 0xB0, 0x01, 0x90), mem(0x220789, 0xB0, 0x01, 0x90)},
		6156: {mem(0x22029A, 0xB0, 0x01, 0x90), mem(0x2206E2, 0xB0, 0x01, 0x90)},
		6527: {mem(0x22C35E, 0xB0, 0x01, 0x90), mem(0x22C7A2, 0xB0, 0x01, 0x90)},
		6566: {mem(0x23936E, 0xB0, 0x01, 0x90), mem(0x2397B2, 0xB0, 0x01, 0x90)},
		6586: {mem(0x22CEAE, 0xB0, 0x01, 0x90), mem(0x22D2F2, 0xB0, 0x01, 0x90)},
		6627: {mem(0x22C9CE, 0xB0, 0x01, 0x90), mem(0x22CE12, 0xB0, 0x01, 0x90)},
		6670: {mem(0x22CDCE, 0xB0, 0x01, 0x90), mem(0x22D212, 0xB0, 0x01, 0x90)},
		6729: {mem(0x22E64E, 0xB0, 0x01, 0x90), mem(0x22EA92, 0xB0, 0x01, 0x90)},
	},
}
