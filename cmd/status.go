package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stubbiali/venvctl/internal/config"
	"github.com/stubbiali/venvctl/internal/errors"
	"github.com/stubbiali/venvctl/internal/system"
	"github.com/stubbiali/venvctl/internal/venv"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the sandbox state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var statusConfigFile string

func init() {
	statusCmd.Flags().StringVar(&statusConfigFile, "config", config.DefaultConfigFile, "Configuration file")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fs := system.DefaultFS()

	cfg, err := config.Load(fs, statusConfigFile)
	if err != nil {
		return errors.ConfigError("failed to load configuration", err)
	}

	fmt.Println(statusLine(fs, cfg.SandboxPath))
	return nil
}

// statusLine derives the one-line status report for the sandbox at path.
func statusLine(fs system.FileSystem, path string) string {
	if !fs.Exists(path) {
		return fmt.Sprintf("no sandbox at %s", path)
	}
	if !venv.Exists(fs, path) {
		return fmt.Sprintf("%s exists but is not a sandbox", path)
	}

	version, err := venv.Interpreter(fs, path)
	if err != nil || version == "" {
		return fmt.Sprintf("sandbox at %s", path)
	}
	return fmt.Sprintf("sandbox at %s (python %s)", path, version)
}
