package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stubbiali/venvctl/internal/config"
	"github.com/stubbiali/venvctl/internal/errors"
	"github.com/stubbiali/venvctl/internal/system"
	"github.com/stubbiali/venvctl/internal/venv"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Remove the development sandbox",
	Args:  cobra.NoArgs,
	RunE:  runDown,
}

var downConfigFile string

func init() {
	downCmd.Flags().StringVar(&downConfigFile, "config", config.DefaultConfigFile, "Configuration file")
	rootCmd.AddCommand(downCmd)
}

func runDown(cmd *cobra.Command, args []string) error {
	fs := system.DefaultFS()

	cfg, err := config.Load(fs, downConfigFile)
	if err != nil {
		return errors.ConfigError("failed to load configuration", err)
	}

	if err := venv.Remove(fs, cfg.SandboxPath); err != nil {
		return err
	}

	logSuccess("Sandbox %s removed", cfg.SandboxPath)
	return nil
}
