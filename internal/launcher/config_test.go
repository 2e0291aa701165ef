package launcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"crylauncher/internal/catalog"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig(nil)
		require.NoError(t, err)
		require.Equal(t, "launcher.log", config.LogFile)
		require.Equal(t, "info", config.LogLevel)
		require.Empty(t, config.Patches)
	})

	t.Run("full", func(t *testing.T) {
		data := []byte(`
log_file = "server.log"
log_level = "debug"

[patches]
AllowSameCDKeys = false
DisableIntros = true
`)
		config, err := LoadConfig(data)
		require.NoError(t, err)
		require.Equal(t, "server.log", config.LogFile)
		require.Equal(t, "debug", config.LogLevel)
		require.False(t, config.Enabled(catalog.AllowSameCDKeys))
		require.True(t, config.Enabled(catalog.DisableIntros))
	})

	t.Run("invalid toml", func(t *testing.T) {
		config, err := LoadConfig([]byte("log_file = [broken"))
		require.Error(t, err)
		require.Nil(t, config)
	})

	t.Run("invalid log level", func(t *testing.T) {
		config, err := LoadConfig([]byte(`log_level = "loud"`))
		require.Error(t, err)
		require.Nil(t, config)
	})
}

func TestConfig_Enabled(t *testing.T) {
	config, err := LoadConfig(nil)
	require.NoError(t, err)

	// capabilities are enabled unless disabled explicitly
	require.True(t, config.Enabled(catalog.HookError))

	config.Patches = map[string]bool{string(catalog.HookError): false}
	require.False(t, config.Enabled(catalog.HookError))
}
