package config

import "fmt"

// Resolve merges CLI overrides with config defaults into the effective
// settings: a non-empty override wins, otherwise the config default is
// used. Fields the launch requires fail resolution when both sides are
// absent.
func Resolve(cfg *Config, ov Overrides) (*Settings, error) {
	s := &Settings{
		Prefix:   cfg.Prefix,
		Type:     cfg.Type,
		Snapshot: cfg.SnapshotEnabled(),
		Network:  cfg.Network,
		Display:  cfg.Display,
	}

	s.Memory = pick(ov.Memory, cfg.Memory)
	s.DiskSize = pick(ov.DiskSize, cfg.DiskSize)
	s.ISO = pick(ov.ISO, cfg.ISO)

	s.CPUs = cfg.CPUs
	if ov.CPUs > 0 {
		s.CPUs = ov.CPUs
	}

	// Class-dependent display default: minimal machines run headless
	if s.Display == "" {
		if s.Type == TypeMinimal {
			s.Display = "none"
		} else {
			s.Display = "gtk"
		}
	}

	if s.Memory == "" {
		return nil, fmt.Errorf("memory not set: supply -m or DEFAULT_MEMORY")
	}
	if s.CPUs <= 0 {
		return nil, fmt.Errorf("cpu count not set: supply -p or DEFAULT_CPUS")
	}
	if s.DiskSize == "" {
		return nil, fmt.Errorf("disk size not set: supply -s or DEFAULT_DISK_SIZE")
	}

	return s, nil
}

func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
