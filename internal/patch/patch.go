// Package patch rewrites the matplotlib backend default inside a sandbox.
//
// On Darwin hosts the backend that matplotlib selects by default ("macosx")
// breaks interactive plotting from a sandbox, so the installed matplotlibrc
// is rewritten to declare TkAgg instead. The rewrite targets a single line
// and is byte-idempotent: once patched, no line matches and the file is left
// untouched.
package patch

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/stubbiali/venvctl/internal/errors"
	"github.com/stubbiali/venvctl/internal/logging"
	"github.com/stubbiali/venvctl/internal/platform"
	"github.com/stubbiali/venvctl/internal/system"
)

// backendLine matches the macosx backend declaration in matplotlibrc.
var backendLine = regexp.MustCompile(`^\s*backend\s*:\s*macosx\s*$`)

// replacement is the fixed alternate backend declaration.
const replacement = "backend : TkAgg"

// BackendPatch applies the matplotlib backend rewrite to a sandbox.
type BackendPatch struct {
	fs          system.FileSystem
	tag         platform.Tag
	interpreter string
}

// New returns a BackendPatch for the given platform tag and interpreter
// identifier. The identifier templates the site-packages path inside the
// sandbox (e.g. "python3" -> lib/python3/site-packages/...).
func New(fs system.FileSystem, tag platform.Tag, interpreter string) *BackendPatch {
	return &BackendPatch{fs: fs, tag: tag, interpreter: interpreter}
}

// TargetPath resolves the configuration file inside the sandbox. The
// templated relative path is joined with securejoin so it cannot escape the
// sandbox root.
func (p *BackendPatch) TargetPath(sandboxRoot string) (string, error) {
	rel := filepath.Join("lib", p.interpreter, "site-packages", "matplotlib", "mpl-data", "matplotlibrc")
	return securejoin.SecureJoin(sandboxRoot, rel)
}

// Apply performs the rewrite. Off Darwin the step is skipped. On Darwin a
// missing target is fatal: a silent no-op would leave the known-broken
// default in place without operator awareness.
func (p *BackendPatch) Apply(sandboxRoot string) error {
	if !p.tag.NeedsBackendPatch() {
		logging.Debug("backend patch skipped", "platform", string(p.tag))
		return nil
	}

	target, err := p.TargetPath(sandboxRoot)
	if err != nil {
		return errors.PatchFailed(err)
	}

	if !p.fs.Exists(target) {
		return errors.PatchTargetMissing(target)
	}

	data, err := p.fs.ReadFile(target)
	if err != nil {
		return errors.PatchFailed(fmt.Errorf("cannot read %s: %w", target, err))
	}

	lines := strings.Split(string(data), "\n")
	patched := false
	for i, line := range lines {
		if backendLine.MatchString(line) {
			lines[i] = replacement
			patched = true
			break
		}
	}

	if !patched {
		// Already rewritten (or never declared macosx); leaving the file
		// untouched keeps repeated runs byte-identical.
		logging.Debug("backend patch already applied", "target", target)
		return nil
	}

	if err := p.writeAtomic(target, []byte(strings.Join(lines, "\n"))); err != nil {
		return errors.PatchFailed(err)
	}

	logging.Debug("backend patched", "target", target, "backend", "TkAgg")
	return nil
}

// writeAtomic persists data via a temporary file in the same directory
// followed by a rename, so a crash mid-write never leaves a torn file.
func (p *BackendPatch) writeAtomic(target string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(target), ".venvctl-tmp-"+filepath.Base(target))
	if err := p.fs.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", tmp, err)
	}
	if err := p.fs.Rename(tmp, target); err != nil {
		// Best effort; the stale temp file is harmless but untidy.
		if rmErr := p.fs.Remove(tmp); rmErr != nil {
			logging.Warn("failed to remove temp file", "path", tmp, "error", rmErr)
		}
		return fmt.Errorf("cannot replace %s: %w", target, err)
	}
	return nil
}
