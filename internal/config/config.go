package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/stubbiali/venvctl/internal/system"
)

// DefaultConfigFile is the optional per-project configuration file.
const DefaultConfigFile = "venvctl.toml"

// Config holds the provisioning flags. Immutable for the duration of a run.
type Config struct {
	// Interpreter names the host interpreter used to build the sandbox.
	// The workflow does not install one.
	Interpreter string `toml:"interpreter"`

	// SandboxPath is the sandbox root, relative to the project root unless
	// absolute. If it denotes an existing directory and FreshInstall is set,
	// it is destroyed without confirmation.
	SandboxPath string `toml:"sandbox"`

	// FreshInstall destroys and recreates the sandbox before installing.
	FreshInstall bool `toml:"fresh"`

	// UpgradePip upgrades the package installer inside the sandbox before
	// dependent installs run.
	UpgradePip bool `toml:"upgrade-pip"`

	// DevManifest is the development-only dependency list file.
	DevManifest string `toml:"dev-manifest"`

	// SoftUpgrade downgrades an installer upgrade failure from fatal to a
	// warning. Default is strict.
	SoftUpgrade bool `toml:"soft-upgrade"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Interpreter:  "python3",
		SandboxPath:  "venv",
		FreshInstall: true,
		UpgradePip:   true,
		DevManifest:  "requirements_dev.txt",
	}
}

// Load resolves the configuration: defaults, then the TOML file at path
// (skipped when absent), then VENVCTL_* environment variables.
func Load(fs system.FileSystem, path string) (Config, error) {
	cfg := Default()

	if path != "" && fs.Exists(path) {
		data, err := fs.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from VENVCTL_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("VENVCTL_PYTHON"); v != "" {
		c.Interpreter = v
	}
	if v := os.Getenv("VENVCTL_VENV"); v != "" {
		c.SandboxPath = v
	}
	if v := os.Getenv("VENVCTL_DEV_MANIFEST"); v != "" {
		c.DevManifest = v
	}

	for _, e := range []struct {
		name string
		dst  *bool
	}{
		{"VENVCTL_FRESH", &c.FreshInstall},
		{"VENVCTL_UPGRADE_PIP", &c.UpgradePip},
		{"VENVCTL_SOFT_UPGRADE", &c.SoftUpgrade},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean in %s: %q", e.name, v)
		}
		*e.dst = b
	}
	return nil
}

// Validate checks that the Config is usable.
func (c *Config) Validate() error {
	if c.Interpreter == "" {
		return fmt.Errorf("interpreter is required")
	}
	if strings.ContainsAny(c.Interpreter, " \t") {
		return fmt.Errorf("interpreter must be a bare command name or path, got %q", c.Interpreter)
	}
	if c.SandboxPath == "" {
		return fmt.Errorf("sandbox path is required")
	}
	if c.DevManifest == "" {
		return fmt.Errorf("dev-manifest is required")
	}
	return nil
}
