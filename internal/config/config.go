package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Load reads a launch config file. The format is declarative KEY=value
// assignments (VM_PREFIX, VM_TYPE, DEFAULT_MEMORY, ...).
func Load(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	v := viper.New()

	// Set defaults
	setDefaults(v)

	// KEY=value assignment files parse as dotenv
	v.SetConfigFile(path)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	// Expand home directory in the default ISO path
	if cfg.ISO != "" {
		expanded, err := homedir.Expand(cfg.ISO)
		if err == nil {
			cfg.ISO = expanded
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logrus.Debugf("Loaded config %s (prefix=%s type=%s)", path, cfg.Prefix, cfg.Type)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("vm_type", TypeStandard)
	v.SetDefault("snapshot", "off")
	v.SetDefault("network", NetworkUser)
}

// Validate checks the fields the launch pipeline depends on. Tunables
// like memory may stay empty here; they are checked after the override
// merge in Resolve.
func (c *Config) Validate() error {
	if c.Prefix == "" {
		return fmt.Errorf("VM_PREFIX must be set")
	}

	switch c.Type {
	case TypeStandard, TypeMinimal:
	default:
		return fmt.Errorf("VM_TYPE must be %q or %q, got %q", TypeStandard, TypeMinimal, c.Type)
	}

	switch c.Snapshot {
	case "on", "off":
	default:
		return fmt.Errorf("SNAPSHOT must be \"on\" or \"off\", got %q", c.Snapshot)
	}

	switch c.Network {
	case NetworkUser, NetworkNone:
	default:
		return fmt.Errorf("NETWORK must be %q or %q, got %q", NetworkUser, NetworkNone, c.Network)
	}

	if c.CPUs < 0 {
		return fmt.Errorf("DEFAULT_CPUS must not be negative, got %d", c.CPUs)
	}

	return nil
}

// SnapshotEnabled reports whether the disk attaches as a disposable
// copy-on-write overlay.
func (c *Config) SnapshotEnabled() bool {
	return c.Snapshot == "on"
}
