package config

// VM type classes. The class selects display and diagnostic defaults:
// minimal machines run headless with expanded hypervisor diagnostics.
const (
	TypeStandard = "standard"
	TypeMinimal  = "minimal"
)

// Network modes.
const (
	NetworkUser = "user"
	NetworkNone = "none"
)

// Config holds the declarative settings of one launch config file.
// Immutable once loaded for the session.
type Config struct {
	Prefix   string `mapstructure:"vm_prefix"`
	Type     string `mapstructure:"vm_type"`
	Memory   string `mapstructure:"default_memory"`
	CPUs     int    `mapstructure:"default_cpus"`
	DiskSize string `mapstructure:"default_disk_size"`
	ISO      string `mapstructure:"default_iso"`
	Snapshot string `mapstructure:"snapshot"`
	Network  string `mapstructure:"network"`
	Display  string `mapstructure:"display"`
}

// Overrides carries the CLI-supplied values. Each non-zero field takes
// precedence over the corresponding config default.
type Overrides struct {
	ISO      string
	Memory   string
	CPUs     int
	DiskSize string
}

// Settings is the effective parameter set after override/default
// resolution. Computed once per invocation, never mutated afterward.
type Settings struct {
	Prefix   string
	Type     string
	Memory   string
	CPUs     int
	DiskSize string
	ISO      string
	Snapshot bool
	Network  string
	Display  string
}
