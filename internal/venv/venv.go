package venv

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stubbiali/venvctl/internal/errors"
	"github.com/stubbiali/venvctl/internal/logging"
	"github.com/stubbiali/venvctl/internal/system"
)

// MarkerFile distinguishes a sandbox from an arbitrary directory.
const MarkerFile = "pyvenv.cfg"

// Deps bundles the system dependencies of the sandbox operations.
type Deps struct {
	FS   system.FileSystem
	Exec system.CommandExecutor
}

// Exists reports whether path holds a sandbox (marker file present).
func Exists(fs system.FileSystem, path string) bool {
	return fs.Exists(filepath.Join(path, MarkerFile))
}

// Reset destroys whatever exists at path and materializes a fresh sandbox
// bound to interpreter. Destruction is unconditional and unconfirmed.
// On a failed creation no partial sandbox is left behind.
func Reset(ctx context.Context, deps Deps, interpreter, path string) error {
	interpPath, err := deps.Exec.LookPath(interpreter)
	if err != nil {
		return errors.InterpreterNotFound(interpreter)
	}
	logging.Debug("interpreter resolved", "name", interpreter, "path", interpPath)

	if deps.FS.Exists(path) {
		logging.Debug("removing existing sandbox", "path", path)
		if err := deps.FS.RemoveAll(path); err != nil {
			return errors.SetupFailed(fmt.Sprintf("cannot remove %s", path), err)
		}
	}

	logging.Debug("creating sandbox", "interpreter", interpreter, "path", path)
	output, err := deps.Exec.Execute(ctx, interpPath, "-m", "venv", path)
	if err != nil {
		// Do not leave a half-built environment that a later run could
		// mistake for a usable sandbox.
		if rmErr := deps.FS.RemoveAll(path); rmErr != nil {
			logging.Warn("failed to remove partial sandbox", "path", path, "error", rmErr)
		}
		return errors.SetupFailed(fmt.Sprintf("sandbox creation failed: %s", strings.TrimSpace(string(output))), err)
	}

	return nil
}

// Remove deletes the sandbox at path. It refuses to delete a directory that
// exists but carries no sandbox marker.
func Remove(fs system.FileSystem, path string) error {
	if !fs.Exists(path) {
		return errors.NoEnvironment(path)
	}
	if !Exists(fs, path) {
		return errors.New(errors.ExitGeneralError, fmt.Sprintf("refusing to remove %s: not a sandbox", path))
	}
	if err := fs.RemoveAll(path); err != nil {
		return errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("cannot remove %s", path), err)
	}
	return nil
}

// Interpreter reads the interpreter version recorded in the sandbox marker
// file, e.g. "3.11.2". Returns an empty string when not recorded.
func Interpreter(fs system.FileSystem, path string) (string, error) {
	data, err := fs.ReadFile(filepath.Join(path, MarkerFile))
	if err != nil {
		return "", errors.NoEnvironment(path)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "version" || key == "version_info" {
			return strings.TrimSpace(value), nil
		}
	}
	return "", nil
}
