package cmd

import (
	"fmt"

	"github.com/jburg3ss/qlaunch/internal/config"
	"github.com/spf13/cobra"
)

var validateConfigPath string

var validateCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate a launch config file",
	Long:  "Check a launch config file for syntax errors and missing required fields.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateConfig()
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "launch config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func validateConfig() error {
	cfg, err := config.Load(validateConfigPath)
	if err != nil {
		return fmt.Errorf("configuration file has errors: %w", err)
	}

	fmt.Println("✓ Configuration is valid")
	fmt.Printf("✓ Prefix: %s\n", cfg.Prefix)
	fmt.Printf("✓ Type: %s\n", cfg.Type)

	if cfg.Memory == "" {
		fmt.Println("  note: DEFAULT_MEMORY unset, launches require -m")
	}
	if cfg.CPUs == 0 {
		fmt.Println("  note: DEFAULT_CPUS unset, launches require -p")
	}
	if cfg.DiskSize == "" {
		fmt.Println("  note: DEFAULT_DISK_SIZE unset, launches require -s")
	}

	return nil
}
