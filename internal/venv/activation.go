package venv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stubbiali/venvctl/internal/errors"
	"github.com/stubbiali/venvctl/internal/logging"
	"github.com/stubbiali/venvctl/internal/system"
)

// Activation binds tool resolution to a sandbox. It is an explicit, passed
// context object: commands run with Environ() resolve against the sandbox
// bin directory first. Every successful Activate must be matched by exactly
// one Deactivate.
type Activation struct {
	root     string
	base     []string
	released bool
}

// Activate binds to the sandbox at path. Fails with a no-environment error
// when path does not hold a sandbox.
func Activate(fs system.FileSystem, path string) (*Activation, error) {
	return activate(fs, path, os.Environ())
}

// ActivateWithBase is Activate with an explicit base environment. Tests use
// it to keep the derived environment deterministic.
func ActivateWithBase(fs system.FileSystem, path string, base []string) (*Activation, error) {
	return activate(fs, path, base)
}

func activate(fs system.FileSystem, path string, base []string) (*Activation, error) {
	if !Exists(fs, path) {
		return nil, errors.NoEnvironment(path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.SetupFailed(fmt.Sprintf("cannot resolve sandbox path %s", path), err)
	}

	logging.Debug("sandbox activated", "root", abs)
	return &Activation{root: abs, base: base}, nil
}

// Root returns the absolute sandbox root.
func (a *Activation) Root() string {
	return a.root
}

// BinDir returns the sandbox executable directory.
func (a *Activation) BinDir() string {
	return filepath.Join(a.root, "bin")
}

// Released reports whether Deactivate has run.
func (a *Activation) Released() bool {
	return a.released
}

// Environ returns the base environment rebound to the sandbox: the sandbox
// bin directory is prepended to PATH, VIRTUAL_ENV is set, and PYTHONHOME is
// stripped so the host interpreter configuration cannot leak in.
func (a *Activation) Environ() []string {
	env := make([]string, 0, len(a.base)+2)
	pathSeen := false
	for _, kv := range a.base {
		key, val, _ := strings.Cut(kv, "=")
		switch key {
		case "PYTHONHOME", "VIRTUAL_ENV":
			continue
		case "PATH":
			pathSeen = true
			env = append(env, "PATH="+a.BinDir()+string(os.PathListSeparator)+val)
		default:
			env = append(env, kv)
		}
	}
	if !pathSeen {
		env = append(env, "PATH="+a.BinDir())
	}
	env = append(env, "VIRTUAL_ENV="+a.root)
	return env
}

// Deactivate releases the binding. A second call is an error: the workflow
// guarantees exactly one deactivation per activation.
func (a *Activation) Deactivate() error {
	if a.released {
		return fmt.Errorf("sandbox already deactivated: %s", a.root)
	}
	a.released = true
	logging.Debug("sandbox deactivated", "root", a.root)
	return nil
}
