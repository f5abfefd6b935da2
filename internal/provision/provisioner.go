package provision

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/stubbiali/venvctl/internal/config"
	"github.com/stubbiali/venvctl/internal/hooks"
	"github.com/stubbiali/venvctl/internal/installer"
	"github.com/stubbiali/venvctl/internal/logging"
	"github.com/stubbiali/venvctl/internal/patch"
	"github.com/stubbiali/venvctl/internal/platform"
	"github.com/stubbiali/venvctl/internal/system"
	"github.com/stubbiali/venvctl/internal/venv"
)

// Options configures a Provisioner. Zero fields fall back to real OS
// implementations, the host platform, and the current directory.
type Options struct {
	FS   system.FileSystem
	Exec system.CommandExecutor

	// Tag is the resolved host platform.
	Tag platform.Tag

	// ProjectRoot is the directory holding the install descriptor, the dev
	// manifest, and the version-control metadata.
	ProjectRoot string

	// BaseEnv is the environment activation derives from. Defaults to
	// os.Environ().
	BaseEnv []string

	// Out receives the activation hint lines on success. Defaults to stdout.
	Out io.Writer
}

// Provisioner runs the provisioning workflow against one sandbox.
// It assumes exclusive access to the sandbox path; running two provisioners
// against the same path concurrently is a caller error.
type Provisioner struct {
	cfg  config.Config
	fs   system.FileSystem
	exec system.CommandExecutor
	tag  platform.Tag
	root string
	base []string
	out  io.Writer

	act   *venv.Activation
	trace []State
}

// New returns a Provisioner for cfg.
func New(cfg config.Config, opts Options) *Provisioner {
	if opts.FS == nil {
		opts.FS = system.DefaultFS()
	}
	if opts.Exec == nil {
		opts.Exec = system.DefaultExecutor()
	}
	if opts.Tag == "" {
		opts.Tag = platform.Resolve()
	}
	if opts.ProjectRoot == "" {
		opts.ProjectRoot = "."
	}
	if opts.BaseEnv == nil {
		opts.BaseEnv = os.Environ()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	return &Provisioner{
		cfg:   cfg,
		fs:    opts.FS,
		exec:  opts.Exec,
		tag:   opts.Tag,
		root:  opts.ProjectRoot,
		base:  opts.BaseEnv,
		out:   opts.Out,
		trace: []State{StateIdle},
	}
}

// Trace returns the states entered so far, in order.
func (p *Provisioner) Trace() []State {
	return p.trace
}

func (p *Provisioner) enter(s State) {
	p.trace = append(p.trace, s)
	logging.Debug("state", "state", s.String())
}

// sandboxPath resolves the configured sandbox path against the project root.
func (p *Provisioner) sandboxPath() string {
	if filepath.IsAbs(p.cfg.SandboxPath) {
		return p.cfg.SandboxPath
	}
	return filepath.Join(p.root, p.cfg.SandboxPath)
}

// Run executes the workflow. The returned error carries an exit code from
// the errors package; a nil return means every step succeeded and the hint
// lines were printed.
func (p *Provisioner) Run(ctx context.Context) error {
	sandbox := p.sandboxPath()
	deps := venv.Deps{FS: p.fs, Exec: p.exec}

	if p.cfg.FreshInstall {
		p.enter(StateResetting)
		logging.UserInfo("Creating sandbox at %s...", p.cfg.SandboxPath)
		if err := venv.Reset(ctx, deps, p.cfg.Interpreter, sandbox); err != nil {
			return err
		}
	}

	act, err := venv.ActivateWithBase(p.fs, sandbox, p.base)
	if err != nil {
		// Nothing to deactivate: activation never happened.
		return err
	}
	p.act = act
	p.enter(StateActivated)

	defer func() {
		if derr := act.Deactivate(); derr != nil {
			logging.Warn("deactivation", "error", derr)
		}
		p.enter(StateDeactivated)
	}()

	pip := installer.New(act, p.fs, p.exec, p.root)

	if p.cfg.UpgradePip {
		p.enter(StateUpgrading)
		logging.UserInfo("Upgrading installer...")
		if err := pip.SelfUpgrade(ctx); err != nil {
			if !p.cfg.SoftUpgrade {
				return err
			}
			logging.UserWarning("Installer upgrade failed, continuing: %v", err)
		}
	}

	p.enter(StateInstalling)
	logging.UserInfo("Installing project in editable mode...")
	if err := pip.InstallEditable(ctx, "."); err != nil {
		return err
	}

	p.enter(StateDevInstalling)
	logging.UserInfo("Installing dev dependencies from %s...", p.cfg.DevManifest)
	if err := pip.InstallRequirements(ctx, p.cfg.DevManifest); err != nil {
		return err
	}

	if p.tag.NeedsBackendPatch() {
		p.enter(StatePatching)
		logging.UserInfo("Patching matplotlib backend...")
		if err := patch.New(p.fs, p.tag, p.cfg.Interpreter).Apply(act.Root()); err != nil {
			return err
		}
	}

	p.enter(StateHookRegistering)
	logging.UserInfo("Registering commit hooks...")
	if err := hooks.Install(ctx, p.exec, p.fs, act, p.root); err != nil {
		return err
	}

	p.printHints()
	return nil
}

// printHints writes the two interactive-shell command hints to stdout.
func (p *Provisioner) printHints() {
	activateScript := filepath.Join(p.cfg.SandboxPath, "bin", "activate")
	fmt.Fprintf(p.out, "Activate the sandbox with: %s\n", shellquote.Join("source", activateScript))
	fmt.Fprintf(p.out, "Deactivate with: deactivate\n")
}
