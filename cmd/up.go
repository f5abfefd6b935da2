package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stubbiali/venvctl/internal/config"
	"github.com/stubbiali/venvctl/internal/errors"
	"github.com/stubbiali/venvctl/internal/logging"
	"github.com/stubbiali/venvctl/internal/provision"
	"github.com/stubbiali/venvctl/internal/system"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Provision the development sandbox",
	Long: `Provision the development sandbox for the project in the current
directory: create or reuse the virtual environment, install the project in
editable mode with its dev dependencies, patch the matplotlib backend on
macOS, and register pre-commit hooks.`,
	Args: cobra.NoArgs,
	RunE: runUp,
}

var (
	upInterpreter string
	upSandbox     string
	upFresh       bool
	upUpgradePip  bool
	upDevManifest string
	upSoftUpgrade bool
	upConfigFile  string
)

func init() {
	upCmd.Flags().StringVar(&upInterpreter, "python", "", "Host interpreter used to build the sandbox")
	upCmd.Flags().StringVar(&upSandbox, "venv", "", "Sandbox directory")
	upCmd.Flags().BoolVar(&upFresh, "fresh", true, "Destroy and recreate the sandbox")
	upCmd.Flags().BoolVar(&upUpgradePip, "upgrade-pip", true, "Upgrade the installer before installing")
	upCmd.Flags().StringVar(&upDevManifest, "dev-manifest", "", "Development dependency manifest file")
	upCmd.Flags().BoolVar(&upSoftUpgrade, "soft-upgrade", false, "Warn instead of failing when the installer upgrade fails")
	upCmd.Flags().StringVar(&upConfigFile, "config", config.DefaultConfigFile, "Configuration file")
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	fs := system.DefaultFS()

	cfg, err := config.Load(fs, upConfigFile)
	if err != nil {
		return errors.ConfigError("failed to load configuration", err)
	}
	applyUpFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return errors.ConfigError("invalid configuration", err)
	}

	logging.Debug("starting provisioning",
		"interpreter", cfg.Interpreter,
		"sandbox", cfg.SandboxPath,
		"fresh", cfg.FreshInstall,
		"upgradePip", cfg.UpgradePip)

	p := provision.New(cfg, provision.Options{})
	if err := p.Run(context.Background()); err != nil {
		return err
	}

	logSuccess("Sandbox ready at %s", cfg.SandboxPath)
	return nil
}

// applyUpFlags overrides cfg with flags the user set explicitly, so flag
// defaults never clobber values from the config file or environment.
func applyUpFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("python") {
		cfg.Interpreter = upInterpreter
	}
	if flags.Changed("venv") {
		cfg.SandboxPath = upSandbox
	}
	if flags.Changed("fresh") {
		cfg.FreshInstall = upFresh
	}
	if flags.Changed("upgrade-pip") {
		cfg.UpgradePip = upUpgradePip
	}
	if flags.Changed("dev-manifest") {
		cfg.DevManifest = upDevManifest
	}
	if flags.Changed("soft-upgrade") {
		cfg.SoftUpgrade = upSoftUpgrade
	}
}
