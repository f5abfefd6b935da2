package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stubbiali/venvctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "venvctl",
	Short: "Reproducible development environment provisioning",
	Long: `venvctl provisions an isolated, reproducible development sandbox
for a Python project:

  - Creates (or reuses) a virtual environment
  - Installs the project in editable mode plus its dev dependencies
  - Applies the matplotlib backend fix on macOS hosts
  - Registers pre-commit validation hooks

All side effects stay under the sandbox path and the project's
version-control metadata.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
