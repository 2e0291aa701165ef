package winapi

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		err := newError("VirtualProtect", "invalid root block path", errors.New("access denied"))
		require.EqualError(t, err, "VirtualProtect: invalid root block path, because access denied")
	})

	t.Run("without cause", func(t *testing.T) {
		err := newError("GetModuleHandleW", "module is not loaded", nil)
		require.EqualError(t, err, "GetModuleHandleW: module is not loaded")
	})
}

func TestNewErrorf(t *testing.T) {
	err := newErrorf("VirtualProtect", errors.New("access denied"),
		"failed to unprotect memory at 0x%X", 0x10060EF2)
	const expected = "VirtualProtect: failed to unprotect memory at 0x10060EF2, because access denied"
	require.EqualError(t, err, expected)
}
