package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/jburg3ss/qlaunch/internal/config"
	"github.com/jburg3ss/qlaunch/internal/vm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list-configs",
	Short: "List launch configs under the config directory",
	Long:  "Display the launch config files found in the project's config directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listConfigs()
	},
}

func listConfigs() error {
	configDir := vm.NewLayout().ConfigDir()

	entries, err := os.ReadDir(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No config directory at %s\n", configDir)
			return nil
		}
		return fmt.Errorf("failed to read config directory: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No configs found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Config\tPrefix\tType\tMemory\tCPUs\tNetwork\n")
	fmt.Fprintf(w, "------\t------\t----\t------\t----\t-------\n")

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(configDir, entry.Name())
		cfg, err := config.Load(path)
		if err != nil {
			logrus.Warnf("Skipping %s: %v", entry.Name(), err)
			continue
		}

		memory := cfg.Memory
		if memory == "" {
			memory = "-"
		}
		cpus := "-"
		if cfg.CPUs > 0 {
			cpus = fmt.Sprintf("%d", cfg.CPUs)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.Name(), cfg.Prefix, cfg.Type, memory, cpus, cfg.Network)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logrus.Debug("Config list displayed successfully")
	return nil
}
