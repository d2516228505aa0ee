package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jburg3ss/qlaunch/internal/config"
	"github.com/jburg3ss/qlaunch/internal/qemu"
	"github.com/jburg3ss/qlaunch/internal/session"
	"github.com/jburg3ss/qlaunch/internal/vm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	launchConfig string
	launchISO    string
	launchMemory string
	launchCPUs   int
	launchSize   string
	launchName   string
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Launch a virtual machine from a config file",
	Long: `Launch a QEMU virtual machine with settings assembled from the given
config file. Any override flag that is set takes precedence over the
corresponding config default.

The VM name is the config's prefix plus a suffix: the -n flag when
given, or a random word. A qcow2 disk image is created on first launch
and reused afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLaunch(cmd.Context())
	},
}

func init() {
	launchCmd.Flags().StringVarP(&launchConfig, "config", "c", "", "launch config file (required)")
	launchCmd.Flags().StringVarP(&launchISO, "iso", "i", "", "ISO image to attach")
	launchCmd.Flags().StringVarP(&launchMemory, "memory", "m", "", "memory size override")
	launchCmd.Flags().IntVarP(&launchCPUs, "cpus", "p", 0, "CPU count override")
	launchCmd.Flags().StringVarP(&launchSize, "size", "s", "", "disk size override (qemu-img syntax, e.g. 20G)")
	launchCmd.Flags().StringVarP(&launchName, "name", "n", "", "VM name suffix (default: random word)")

	_ = launchCmd.MarkFlagRequired("config")
}

func runLaunch(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Load(launchConfig)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Merge CLI overrides
	settings, err := config.Resolve(cfg, config.Overrides{
		ISO:      launchISO,
		Memory:   launchMemory,
		CPUs:     launchCPUs,
		DiskSize: launchSize,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve settings: %w", err)
	}

	identity := vm.NewIdentity(settings.Prefix, launchName)
	logrus.Infof("Launching %s (%s, %s memory, %d cpus)",
		identity, settings.Type, settings.Memory, settings.CPUs)

	layout := vm.NewLayout()
	if err := layout.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	iso := layout.ResolveISO(settings.ISO)

	// Create backing storage on first launch only
	diskPath := layout.DiskPath(identity)
	if _, err := vm.NewImageManager().EnsureDisk(diskPath, settings.DiskSize); err != nil {
		return fmt.Errorf("failed to ensure disk image: %w", err)
	}

	started := time.Now()
	sessionLog := session.New(layout.LogPath(identity, started))

	err = sessionLog.WriteHeader(session.Record{
		Identity:   identity.String(),
		Type:       settings.Type,
		ConfigPath: launchConfig,
		Memory:     settings.Memory,
		CPUs:       settings.CPUs,
		DiskPath:   diskPath,
		DiskSize:   settings.DiskSize,
		ISO:        iso,
		Network:    settings.Network,
		Display:    settings.Display,
		Snapshot:   settings.Snapshot,
	}, started)
	if err != nil {
		return fmt.Errorf("failed to write session log: %w", err)
	}

	command := &qemu.Command{
		Name:         identity.String(),
		Memory:       settings.Memory,
		CPUs:         settings.CPUs,
		DiskPath:     diskPath,
		Snapshot:     settings.Snapshot,
		ISOPath:      iso,
		Network:      settings.Network,
		Display:      settings.Display,
		LogPath:      sessionLog.Path(),
		ExpandedDiag: settings.Type == config.TypeMinimal,
	}

	code, runErr := command.Run(ctx)

	if err := sessionLog.WriteCompletion(code, time.Now()); err != nil {
		logrus.Warnf("Failed to write completion record: %v", err)
	}

	if runErr != nil {
		return runErr
	}
	if code != 0 {
		return &qemu.ExitError{Code: code}
	}

	logrus.Infof("Session %s completed", sessionLog.ID)
	return nil
}
