// Package installer wraps the package installer running inside a sandbox.
//
// Every invocation resolves "pip" through the activation environment, so the
// sandbox's own installer runs, never the host's. The installer is an opaque
// external collaborator: its dependency resolution and registry protocol are
// outside this package's concern, but its error text is always surfaced.
package installer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stubbiali/venvctl/internal/errors"
	"github.com/stubbiali/venvctl/internal/logging"
	"github.com/stubbiali/venvctl/internal/system"
	"github.com/stubbiali/venvctl/internal/venv"
)

// Pip drives the package installer inside an activated sandbox.
type Pip struct {
	act  *venv.Activation
	fs   system.FileSystem
	exec system.CommandExecutor

	// projectRoot is the working directory for installs; manifests and the
	// editable install descriptor are resolved against it.
	projectRoot string
}

// New returns a Pip bound to act, operating from projectRoot.
func New(act *venv.Activation, fs system.FileSystem, exec system.CommandExecutor, projectRoot string) *Pip {
	return &Pip{act: act, fs: fs, exec: exec, projectRoot: projectRoot}
}

func (p *Pip) run(ctx context.Context, args ...string) ([]byte, error) {
	if p.act.Released() {
		return nil, fmt.Errorf("sandbox is deactivated")
	}
	return p.exec.ExecuteEnv(ctx, p.act.Environ(), p.projectRoot, "pip", args...)
}

// SelfUpgrade upgrades the installer itself inside the sandbox. Run before
// dependent installs so they use the newer installer.
func (p *Pip) SelfUpgrade(ctx context.Context) error {
	logging.Debug("upgrading installer")
	output, err := p.run(ctx, "install", "--upgrade", "pip")
	if err != nil {
		return errors.UpgradeFailed(fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err))
	}
	return nil
}

// InstallEditable installs dir in editable mode: source edits take effect
// without reinstalling. This step has the highest chance of legitimate
// failure (missing system libraries, compiler toolchain), so the tool's
// error text must reach the operator.
func (p *Pip) InstallEditable(ctx context.Context, dir string) error {
	logging.Debug("installing project in editable mode", "dir", dir)
	output, err := p.run(ctx, "install", "-e", dir)
	if err != nil {
		return errors.InstallFailed("editable install",
			fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err))
	}
	return nil
}

// InstallRequirements installs every entry of the manifest file. The
// manifest must exist; a missing file is reported before pip runs.
func (p *Pip) InstallRequirements(ctx context.Context, manifest string) error {
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(p.projectRoot, manifest)
	}
	if !p.fs.Exists(manifest) {
		return errors.InstallFailed("dev dependency install",
			fmt.Errorf("manifest not found: %s", manifest))
	}

	logging.Debug("installing dev dependencies", "manifest", manifest)
	output, err := p.run(ctx, "install", "-r", manifest)
	if err != nil {
		return errors.InstallFailed("dev dependency install",
			fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err))
	}
	return nil
}
