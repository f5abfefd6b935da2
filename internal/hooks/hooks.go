// Package hooks registers commit-time validation hooks for the project.
//
// Registration shells out to pre-commit inside the activated sandbox, which
// wires its hook scripts into the project's version-control metadata so they
// run on future commits.
package hooks

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

// IsRepo reports whether path is under git version control.
// .git can be a directory (normal repo) or a file (worktree).
func IsRepo(fs system.FileSystem, path string) bool {
	gitPath := filepath.Join(path, ".git")
	info, err := fs.Stat(gitPath)
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// Install registers the commit-time hooks against projectRoot. The project
// root must be under version control; the hook tool runs with the
// activation environment so the sandbox's copy is used.
func Install(ctx context.Context, exec system.CommandExecutor, fs system.FileSystem, act *venv.Activation, projectRoot string) error {
	if !IsRepo(fs, projectRoot) {
		return errors.NotARepository(projectRoot)
	}

	logging.Debug("registering commit hooks", "root", projectRoot)
	output, err := exec.ExecuteEnv(ctx, act.Environ(), projectRoot, "pre-commit", "install")
	if err != nil {
		return errors.HookFailed(fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err))
	}
	return nil
}
