package launcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"crylauncher/internal/arch"
	"crylauncher/internal/catalog"
	"crylauncher/internal/logger"
	"crylauncher/internal/mempatch"
)

// recordMemory records primitive calls, reads return zeroed entries
// and calls can be armed to fail from the nth call on.
type recordMemory struct {
	calls []string
	fail  int // 1 based call number, zero never fails
}

func (mem *recordMemory) failNow() bool {
	return mem.fail != 0 && len(mem.calls) >= mem.fail
}

func (mem *recordMemory) FillNop(addr uintptr, size int) error {
	mem.calls = append(mem.calls, fmt.Sprintf("FillNop 0x%X %d", addr, size))
	if mem.failNow() {
		return fmt.Errorf("FillNop: failed to fill memory at 0x%X", addr)
	}
	return nil
}

func (mem *recordMemory) FillMem(addr uintptr, data []byte) error {
	mem.calls = append(mem.calls, fmt.Sprintf("FillMem 0x%X %d", addr, len(data)))
	if mem.failNow() {
		return fmt.Errorf("FillMem: failed to fill memory at 0x%X", addr)
	}
	return nil
}

func (mem *recordMemory) ReadPointers(addr uintptr, n int) ([]uintptr, error) {
	mem.calls = append(mem.calls, fmt.Sprintf("ReadPointers 0x%X %d", addr, n))
	entries := make([]uintptr, n)
	for i := 0; i < n; i++ {
		entries[i] = 0x1000 + uintptr(i)
	}
	return entries, nil
}

func testPatcher(t *testing.T, mem mempatch.Memory) *mempatch.Patcher {
	opts := mempatch.Options{ErrorHandler: 0x11223344}
	patcher, err := mempatch.NewPatcher(catalog.Default(), arch.I386, mem, &opts)
	require.NoError(t, err)
	return patcher
}

func force3DNowFix(need bool) func() {
	old := need3DNowFix
	need3DNowFix = func() bool { return need }
	return func() { need3DNowFix = old }
}

func TestVerifyGameBuild(t *testing.T) {
	for _, build := range catalog.KnownBuilds() {
		require.NoError(t, VerifyGameBuild(build))
	}

	err := VerifyGameBuild(1234)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown game build 1234")
}

func TestNew(t *testing.T) {
	config, err := LoadConfig(nil)
	require.NoError(t, err)
	patcher := testPatcher(t, new(recordMemory))

	t.Run("ok", func(t *testing.T) {
		launcher, err := New(config, logger.Test, patcher, 6115, nil)
		require.NoError(t, err)
		require.NotNil(t, launcher)
	})

	t.Run("empty config", func(t *testing.T) {
		launcher, err := New(nil, logger.Test, patcher, 6115, nil)
		require.EqualError(t, err, "empty launcher config")
		require.Nil(t, launcher)
	})

	t.Run("empty logger", func(t *testing.T) {
		launcher, err := New(config, nil, patcher, 6115, nil)
		require.EqualError(t, err, "empty logger")
		require.Nil(t, launcher)
	})

	t.Run("empty patcher", func(t *testing.T) {
		launcher, err := New(config, logger.Test, nil, 6115, nil)
		require.EqualError(t, err, "empty patcher")
		require.Nil(t, launcher)
	})

	t.Run("unknown build", func(t *testing.T) {
		launcher, err := New(config, logger.Test, patcher, 1234, nil)
		require.Error(t, err)
		require.Nil(t, launcher)
	})
}

func TestLauncher_Patch(t *testing.T) {
	defer force3DNowFix(true)()

	config, err := LoadConfig(nil)
	require.NoError(t, err)

	t.Run("single image", func(t *testing.T) {
		mem := new(recordMemory)
		images := map[string]mempatch.Image{
			catalog.CryNetwork: {Base: 0x10000000, Name: catalog.CryNetwork},
		}
		launcher, err := New(config, logger.Test, testPatcher(t, mem), 6115, images)
		require.NoError(t, err)

		err = launcher.Patch()
		require.NoError(t, err)
		require.Contains(t, mem.calls, "FillNop 0x10060EF2 4")
	})

	t.Run("image not loaded", func(t *testing.T) {
		mem := new(recordMemory)
		launcher, err := New(config, logger.Test, testPatcher(t, mem), 6115, nil)
		require.NoError(t, err)

		err = launcher.Patch()
		require.NoError(t, err)
		require.Empty(t, mem.calls)
	})

	t.Run("disabled capability", func(t *testing.T) {
		disabled, err := LoadConfig([]byte("[patches]\nAllowSameCDKeys = false"))
		require.NoError(t, err)

		mem := new(recordMemory)
		images := map[string]mempatch.Image{
			catalog.CryNetwork: {Base: 0x10000000, Name: catalog.CryNetwork},
		}
		launcher, err := New(disabled, logger.Test, testPatcher(t, mem), 6115, images)
		require.NoError(t, err)

		err = launcher.Patch()
		require.NoError(t, err)
		require.NotContains(t, mem.calls, "FillNop 0x10060EF2 4")
	})

	t.Run("failed write aborts", func(t *testing.T) {
		mem := new(recordMemory)
		mem.fail = 1
		images := map[string]mempatch.Image{
			catalog.CryNetwork: {Base: 0x10000000, Name: catalog.CryNetwork},
		}
		launcher, err := New(config, logger.Test, testPatcher(t, mem), 6115, images)
		require.NoError(t, err)

		err = launcher.Patch()
		require.Error(t, err)
		require.Len(t, mem.calls, 1)
	})
}

func TestLauncher_Patch3DNowGate(t *testing.T) {
	config, err := LoadConfig(nil)
	require.NoError(t, err)
	images := map[string]mempatch.Image{
		catalog.CrySystem: {Base: 0x10000000, Name: catalog.CrySystem},
	}

	apply := func(t *testing.T) []string {
		mem := new(recordMemory)
		launcher, err := New(config, logger.Test, testPatcher(t, mem), 6115, images)
		require.NoError(t, err)
		require.NoError(t, launcher.Patch())
		return mem.calls
	}

	// build 6115, 32-bit: the 3DNow! flag byte lives at 0x9412
	const flagWrite = "FillMem 0x10009412 1"

	t.Run("processor needs the fix", func(t *testing.T) {
		defer force3DNowFix(true)()
		require.Contains(t, apply(t), flagWrite)
	})

	t.Run("processor executes 3DNow", func(t *testing.T) {
		defer force3DNowFix(false)()
		require.NotContains(t, apply(t), flagWrite)
	})
}
