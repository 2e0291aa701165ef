package launcher

import (
	"github.com/creasty/defaults"
	"github.com/pkg/errors"

	"crylauncher/internal/logger"
	"crylauncher/internal/mempatch"
	"crylauncher/internal/patch/toml"
)

// Config contains the launcher configuration, it is loaded from the
// config.toml next to the executable.
type Config struct {
	// LogFile is the path of the launcher log file.
	LogFile string `toml:"log_file" default:"launcher.log"`

	// LogLevel filters the launcher log, one of debug, info,
	// warning, error, fatal and off.
	LogLevel string `toml:"log_level" default:"info"`

	// Patches disables single capabilities by name, a capability
	// that does not appear stays enabled. Disabling is meant for
	// troubleshooting a wrong offset table, not for normal use.
	Patches map[string]bool `toml:"patches"`
}

// LoadConfig is used to load and check a launcher configuration,
// missing fields get their default values.
func LoadConfig(data []byte) (*Config, error) {
	config := new(Config)
	err := toml.Unmarshal(data, config)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to load launcher config")
	}
	err = defaults.Set(config)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to set default config values")
	}
	err = config.Check()
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Check is used to check the configuration values that are parsed
// later, a typo in the log level must not surface mid-startup.
func (cfg *Config) Check() error {
	_, err := logger.Parse(cfg.LogLevel)
	if err != nil {
		return errors.WithMessage(err, "invalid log level in launcher config")
	}
	return nil
}

// Enabled is used to check if a capability is enabled. Capabilities
// are enabled unless the configuration disables them.
func (cfg *Config) Enabled(cap mempatch.Capability) bool {
	enabled, ok := cfg.Patches[string(cap)]
	if !ok {
		return true
	}
	return enabled
}
