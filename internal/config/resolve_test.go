package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *Config {
	return &Config{
		Prefix:   "lab",
		Type:     TypeStandard,
		Memory:   "2048",
		CPUs:     2,
		DiskSize: "20G",
		Snapshot: "off",
		Network:  NetworkUser,
	}
}

func TestResolveDefaults(t *testing.T) {
	s, err := Resolve(baseConfig(), Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "2048", s.Memory)
	assert.Equal(t, 2, s.CPUs)
	assert.Equal(t, "20G", s.DiskSize)
	assert.Empty(t, s.ISO)
	assert.False(t, s.Snapshot)
	assert.Equal(t, NetworkUser, s.Network)
}

func TestResolveOverridePrecedence(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		check     func(t *testing.T, s *Settings)
	}{
		{
			name:      "memory override wins",
			overrides: Overrides{Memory: "4096"},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, "4096", s.Memory)
				assert.Equal(t, 2, s.CPUs)
			},
		},
		{
			name:      "cpu override wins",
			overrides: Overrides{CPUs: 8},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, 8, s.CPUs)
				assert.Equal(t, "2048", s.Memory)
			},
		},
		{
			name:      "disk size override wins",
			overrides: Overrides{DiskSize: "40G"},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, "40G", s.DiskSize)
			},
		},
		{
			name:      "iso override wins",
			overrides: Overrides{ISO: "/srv/isos/debian.iso"},
			check: func(t *testing.T, s *Settings) {
				assert.Equal(t, "/srv/isos/debian.iso", s.ISO)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Resolve(baseConfig(), tt.overrides)
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestResolveISOFallsBackToDefault(t *testing.T) {
	cfg := baseConfig()
	cfg.ISO = "alpine.iso"

	s, err := Resolve(cfg, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "alpine.iso", s.ISO)
}

func TestResolveRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"memory absent on both sides", func(cfg *Config) { cfg.Memory = "" }},
		{"cpus absent on both sides", func(cfg *Config) { cfg.CPUs = 0 }},
		{"disk size absent on both sides", func(cfg *Config) { cfg.DiskSize = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)
			_, err := Resolve(cfg, Overrides{})
			assert.Error(t, err)
		})
	}
}

func TestResolveRequiredFieldFromOverride(t *testing.T) {
	cfg := baseConfig()
	cfg.Memory = ""

	s, err := Resolve(cfg, Overrides{Memory: "1024"})
	require.NoError(t, err)
	assert.Equal(t, "1024", s.Memory)
}

func TestResolveDisplayClassDefault(t *testing.T) {
	cfg := baseConfig()
	s, err := Resolve(cfg, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "gtk", s.Display)

	cfg.Type = TypeMinimal
	s, err = Resolve(cfg, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "none", s.Display)

	cfg.Display = "sdl"
	s, err = Resolve(cfg, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "sdl", s.Display)
}
