package catalog

import (
	"crylauncher/internal/arch"
	"crylauncher/internal/mempatch"
)

// capabilities of CryAction.dll
const (
	// AllowDX9ImmersiveMultiplayer allows connecting to DX10 servers
	// with the game running in DX9 mode.
	AllowDX9ImmersiveMultiplayer mempatch.Capability = "AllowDX9ImmersiveMultiplayer"

	// DisableGameplayStats disables automatic creation of
	// "gameplaystatsXXX.txt" files, the "dump_stats" console command
	// can still create them manually.
	DisableGameplayStats mempatch.Capability = "DisableGameplayStats"
)

var allowDX9ImmersiveMultiplayer = variants{
	arch.AMD64: builds{
		5767: {nop(0x2AF92D, 0x1E), nop(0x2B24DD, 0x1A)},
		5879: {nop(0x2AF6ED, 0x1E), nop(0x2B239D, 0x1A)},
		6115: {nop(0x2B349D, 0x1E), nop(0x2B6361, 0x1A)},
		6156: {nop(0x2B394D, 0x1E), nop(0x2B6860, 0x1A)},
		6566: {nop(0x2B06AD, 0x1E), nop(0x2B3EAA, 0x16)},
		6586: {nop(0x2B529D, 0x1E), nop(0x2B7F7A, 0x16)},
		6627: {nop(0x2B39FD, 0x1E), nop(0x2B66DA, 0x16)},
		6670: {nop(0x2B6F6D, 0x1E), nop(0x2B9C21, 0x16)},
		6729: {nop(0x2B6F3D, 0x1E), nop(0x2B9BF1, 0x16)},
	},
	arch.I386: builds{
		5767: {nop(0x1D4ADA, 0x1A), nop(0x1D6B03, 0x15)},
		5879: {nop(0x1D4B0A, 0x1A), nop(0x1D6B33, 0x15)},
		6115: {nop(0x1D6EDA, 0x1A), nop(0x1D8F32, 0x15)},
		6156: {nop(0x1D698A, 0x1A), nop(0x1D89FC, 0x15)},
		6527: {nop(0x1D854A, 0x1A), nop(0x1DA5BC, 0x15)},
		6566: {nop(0x1F09AA, 0x1A), nop(0x1F2DEC, 0x15)},
		6586: {nop(0x1D81DA, 0x1A), nop(0x1DA1CC, 0x15)},
		6627: {nop(0x1D826A, 0x1A), nop(0x1DA25C, 0x15)},
		6670: {nop(0x1D9FCA, 0x1A), nop(0x1DBFBC, 0x15)},
		6729: {nop(0x1D9F6A, 0x1A), nop(0x1DBF5C, 0x15)},
	},
}

// Crysis Wars has no automatically created "gameplaystatsXXX.txt"
// files, so its builds need no entries.
var disableGameplayStats = variants{
	arch.AMD64: builds{
		5767: {mem(0x2F21D6, 0xC3, 0x90, 0x90, 0x90, 0x90)}, // ret and nop padding
		5879: {mem(0x2F59E6, 0xC3, 0x90, 0x90, 0x90, 0x90)},
		6115: {mem(0x2FA686, 0xC3, 0x90, 0x90, 0x90, 0x90)},
		6156: {mem(0x2FA976, 0xC3, 0x90, 0x90, 0x90, 0x90)},
	},
	arch.I386: builds{
		5767: {nop(0x2016ED, 0x7)},
		5879: {nop(0x203EBD, 0x7)},
		6115: {nop(0x20668D, 0x7)},
		6156: {nop(0x20605D, 0x7)},
	},
}
