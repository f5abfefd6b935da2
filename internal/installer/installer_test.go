package installer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stubbiali/venvctl/internal/errors"
	"github.com/stubbiali/venvctl/internal/system"
	"github.com/stubbiali/venvctl/internal/venv"
)

func activatedPip(t *testing.T) (*Pip, *system.MockFS, *system.MockExecutor, *venv.Activation) {
	t.Helper()
	fs := system.NewMockFS()
	fs.AddFile("/work/venv/pyvenv.cfg", []byte("home = /usr/bin\n"), 0644)
	exec := system.NewMockExecutor()

	act, err := venv.ActivateWithBase(fs, "/work/venv", []string{"PATH=/usr/bin"})
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	return New(act, fs, exec, "/work/project"), fs, exec, act
}

func TestSelfUpgrade(t *testing.T) {
	pip, _, exec, _ := activatedPip(t)

	if err := pip.SelfUpgrade(context.Background()); err != nil {
		t.Fatalf("SelfUpgrade() error = %v", err)
	}

	cmd, _ := exec.LastCommand()
	if cmd.Name != "pip" {
		t.Errorf("command = %q, want pip", cmd.Name)
	}
	if got := strings.Join(cmd.Args, " "); got != "install --upgrade pip" {
		t.Errorf("args = %q, want 'install --upgrade pip'", got)
	}
	if cmd.Dir != "/work/project" {
		t.Errorf("dir = %q, want project root", cmd.Dir)
	}

	// Invocation must run under the activation environment.
	envHasSandboxPath := false
	for _, kv := range cmd.Env {
		if strings.HasPrefix(kv, "PATH=/work/venv/bin") {
			envHasSandboxPath = true
		}
	}
	if !envHasSandboxPath {
		t.Error("pip must run with the sandbox bin directory first on PATH")
	}
}

func TestSelfUpgrade_SurfacesToolError(t *testing.T) {
	pip, _, exec, _ := activatedPip(t)
	exec.AddResponse("pip install", []byte("Could not fetch pip"), fmt.Errorf("exit status 1"))

	err := pip.SelfUpgrade(context.Background())
	if err == nil {
		t.Fatal("SelfUpgrade() should fail")
	}
	if errors.GetExitCode(err) != errors.ExitUpgrade {
		t.Errorf("exit code = %d, want ExitUpgrade", errors.GetExitCode(err))
	}
	if !strings.Contains(err.Error(), "Could not fetch pip") {
		t.Errorf("error should carry the tool output, got: %v", err)
	}
}

func TestInstallEditable(t *testing.T) {
	pip, _, exec, _ := activatedPip(t)

	if err := pip.InstallEditable(context.Background(), "."); err != nil {
		t.Fatalf("InstallEditable() error = %v", err)
	}

	cmd, _ := exec.LastCommand()
	if got := strings.Join(cmd.Args, " "); got != "install -e ." {
		t.Errorf("args = %q, want 'install -e .'", got)
	}
}

func TestInstallEditable_SurfacesToolError(t *testing.T) {
	pip, _, exec, _ := activatedPip(t)
	exec.AddResponse("pip install", []byte("error: command 'gcc' failed"), fmt.Errorf("exit status 1"))

	err := pip.InstallEditable(context.Background(), ".")
	if err == nil {
		t.Fatal("InstallEditable() should fail")
	}
	if errors.GetExitCode(err) != errors.ExitInstall {
		t.Errorf("exit code = %d, want ExitInstall", errors.GetExitCode(err))
	}
	if !strings.Contains(err.Error(), "gcc") {
		t.Errorf("error should carry the tool output, got: %v", err)
	}
}

func TestInstallRequirements(t *testing.T) {
	pip, fs, exec, _ := activatedPip(t)
	fs.AddFile("/work/project/requirements_dev.txt", []byte("pytest\n"), 0644)

	if err := pip.InstallRequirements(context.Background(), "requirements_dev.txt"); err != nil {
		t.Fatalf("InstallRequirements() error = %v", err)
	}

	cmd, _ := exec.LastCommand()
	if got := strings.Join(cmd.Args, " "); got != "install -r /work/project/requirements_dev.txt" {
		t.Errorf("args = %q, want the manifest resolved against the project root", got)
	}
}

func TestInstallRequirements_MissingManifest(t *testing.T) {
	pip, _, exec, _ := activatedPip(t)

	err := pip.InstallRequirements(context.Background(), "requirements_dev.txt")
	if err == nil {
		t.Fatal("InstallRequirements() should fail for a missing manifest")
	}
	if errors.GetExitCode(err) != errors.ExitInstall {
		t.Errorf("exit code = %d, want ExitInstall", errors.GetExitCode(err))
	}
	if len(exec.Commands) != 0 {
		t.Error("pip must not be invoked when the manifest is missing")
	}
}

func TestPip_RefusesDeactivatedSandbox(t *testing.T) {
	pip, _, exec, act := activatedPip(t)

	if err := act.Deactivate(); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if err := pip.InstallEditable(context.Background(), "."); err == nil {
		t.Error("installer must refuse to run against a deactivated sandbox")
	}
	if len(exec.Commands) != 0 {
		t.Error("no command should run after deactivation")
	}
}
