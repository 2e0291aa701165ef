package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"

	"crylauncher/internal/arch"
	"crylauncher/internal/mempatch"
)

// recordMemory only records primitive calls, reads return zeroed
// entries.
type recordMemory struct {
	calls []string
}

func (mem *recordMemory) FillNop(addr uintptr, size int) error {
	mem.calls = append(mem.calls, fmt.Sprintf("FillNop 0x%X %d", addr, size))
	return nil
}

func (mem *recordMemory) FillMem(addr uintptr, data []byte) error {
	mem.calls = append(mem.calls, fmt.Sprintf("FillMem 0x%X %d", addr, len(data)))
	return nil
}

func (mem *recordMemory) ReadPointers(addr uintptr, n int) ([]uintptr, error) {
	mem.calls = append(mem.calls, fmt.Sprintf("ReadPointers 0x%X %d", addr, n))
	return make([]uintptr, n), nil
}

func TestDefault(t *testing.T) {
	catalog := Default()
	require.Len(t, catalog, 18)

	for cap, vars := range catalog {
		cap, vars := cap, vars
		t.Run(string(cap), func(t *testing.T) {
			require.NotEmpty(t, vars)
			for variant, builds := range vars {
				require.Contains(t, []arch.Variant{arch.I386, arch.AMD64}, variant)
				require.NotEmpty(t, builds)
				ptrSize := variant.PointerSize()
				for build, ops := range builds {
					require.True(t, IsKnownBuild(build), "unknown build %d", build)
					require.NotEmpty(t, ops)
					for _, op := range ops {
						checkOp(t, op, ptrSize)
					}
				}
			}
		})
	}
}

func checkOp(t *testing.T, op mempatch.Op, ptrSize int) {
	switch op := op.(type) {
	case mempatch.NopFill:
		require.Greater(t, op.Size, 0)
	case mempatch.Overwrite:
		require.NotEmpty(t, op.Data)
	case mempatch.Trampoline:
		require.NotEmpty(t, op.Template)
		require.NotEmpty(t, op.Operands)
		for _, operand := range op.Operands {
			require.GreaterOrEqual(t, operand.Offset, 0)
			require.LessOrEqual(t, operand.Offset+ptrSize, len(op.Template))
			require.Equal(t, mempatch.ErrorHandler, operand.Ref)
		}
	case mempatch.VTableNeuter:
		require.Greater(t, op.Total, 0)
		require.GreaterOrEqual(t, op.Keep, 0)
		require.LessOrEqual(t, op.Keep, op.Total)
	default:
		t.Fatalf("unknown patch operation: %T", op)
	}
}

func TestDefault_ApplyAll(t *testing.T) {
	catalog := Default()
	opts := mempatch.Options{ErrorHandler: 0x11223344}

	for _, variant := range []arch.Variant{arch.I386, arch.AMD64} {
		for _, build := range KnownBuilds() {
			for _, target := range Targets() {
				image := mempatch.Image{Base: 0x10000000, Name: target.Name}
				for _, cap := range target.Capabilities {
					mem := new(recordMemory)
					patcher, err := mempatch.NewPatcher(catalog, variant, mem, &opts)
					require.NoError(t, err)

					err = patcher.Apply(image, cap, build)
					require.NoError(t, err, "%s %s build %d", cap, variant, build)
				}
			}
		}
	}
}

func TestAllowSameCDKeysScenario(t *testing.T) {
	ops, err := Default().Lookup(AllowSameCDKeys, arch.I386, 6115)
	require.NoError(t, err)
	require.Equal(t, []mempatch.Op{mempatch.NopFill{Offset: 0x60EF2, Size: 4}}, ops)

	mem := new(recordMemory)
	patcher, err := mempatch.NewPatcher(Default(), arch.I386, mem, nil)
	require.NoError(t, err)

	image := mempatch.Image{Base: 0x10000000, Name: CryNetwork}
	err = patcher.Apply(image, AllowSameCDKeys, 6115)
	require.NoError(t, err)
	require.Equal(t, []string{"FillNop 0x10060EF2 4"}, mem.calls)
}

func TestErrorHookTemplates(t *testing.T) {
	t.Run("64-bit", func(t *testing.T) {
		require.Equal(t, make([]byte, 8), errorHook64[errorHookSlot64:errorHookSlot64+8])

		count := 0
		for offset := 0; offset < len(errorHook64); {
			inst, err := x86asm.Decode(errorHook64[offset:], 64)
			require.NoError(t, err)
			offset += inst.Len
			count++
		}
		require.Equal(t, 10, count)
		require.Equal(t, byte(0xC3), errorHook64[len(errorHook64)-1])
	})

	t.Run("32-bit", func(t *testing.T) {
		require.Equal(t, make([]byte, 4), errorHook32[errorHookSlot32:errorHookSlot32+4])

		count := 0
		for offset := 0; offset < len(errorHook32); {
			inst, err := x86asm.Decode(errorHook32[offset:], 32)
			require.NoError(t, err)
			offset += inst.Len
			count++
		}
		require.Equal(t, 8, count)
		require.Equal(t, byte(0xC3), errorHook32[len(errorHook32)-1])
	})
}

func TestTargets(t *testing.T) {
	catalog := Default()
	seen := make(map[mempatch.Capability]bool)
	for _, target := range Targets() {
		require.Contains(t, target.Name, ".dll")
		require.NotEmpty(t, target.Capabilities)
		for _, cap := range target.Capabilities {
			require.False(t, seen[cap], "%s appears twice", cap)
			seen[cap] = true
			require.Contains(t, catalog, cap)
		}
	}
	require.Len(t, seen, len(catalog))
}

func TestKnownBuilds(t *testing.T) {
	builds := KnownBuilds()
	require.Len(t, builds, 10)
	require.True(t, IsKnownBuild(6115))
	require.False(t, IsKnownBuild(1234))

	builds[0] = 1234
	require.False(t, IsKnownBuild(1234))
}
