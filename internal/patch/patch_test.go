package patch

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stubbiali/venvctl/internal/errors"
	"github.com/stubbiali/venvctl/internal/platform"
	"github.com/stubbiali/venvctl/internal/system"
)

const targetPath = "/work/venv/lib/python3/site-packages/matplotlib/mpl-data/matplotlibrc"

const unpatchedRC = `# matplotlib configuration
#interactive : False
backend      : macosx
#backend.qt4 : PyQt4
`

func TestTargetPath(t *testing.T) {
	p := New(system.NewMockFS(), platform.Darwin, "python3.11")

	got, err := p.TargetPath("/work/venv")
	if err != nil {
		t.Fatalf("TargetPath() error = %v", err)
	}
	want := "/work/venv/lib/python3.11/site-packages/matplotlib/mpl-data/matplotlibrc"
	if got != want {
		t.Errorf("TargetPath() = %q, want %q", got, want)
	}
}

func TestApply_RewritesBackendLine(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(targetPath, []byte(unpatchedRC), 0644)
	p := New(fs, platform.Darwin, "python3")

	if err := p.Apply("/work/venv"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	data, ok := fs.GetFile(targetPath)
	if !ok {
		t.Fatal("target file disappeared")
	}
	content := string(data)
	if strings.Contains(content, "macosx") {
		t.Errorf("macosx declaration should be gone, got:\n%s", content)
	}
	if !strings.Contains(content, "backend : TkAgg") {
		t.Errorf("TkAgg declaration missing, got:\n%s", content)
	}
	// Commented declarations stay untouched.
	if !strings.Contains(content, "#backend.qt4 : PyQt4") {
		t.Errorf("unrelated lines must be preserved, got:\n%s", content)
	}
}

func TestApply_Idempotent(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(targetPath, []byte(unpatchedRC), 0644)
	p := New(fs, platform.Darwin, "python3")

	if err := p.Apply("/work/venv"); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	first, _ := fs.GetFile(targetPath)

	if err := p.Apply("/work/venv"); err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	second, _ := fs.GetFile(targetPath)

	if !bytes.Equal(first, second) {
		t.Errorf("second Apply() must leave the file byte-identical:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestApply_SkippedOffDarwin(t *testing.T) {
	for _, tag := range []platform.Tag{platform.Linux, platform.Other} {
		t.Run(string(tag), func(t *testing.T) {
			fs := system.NewMockFS()
			fs.AddFile(targetPath, []byte(unpatchedRC), 0644)
			p := New(fs, tag, "python3")

			if err := p.Apply("/work/venv"); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}

			data, _ := fs.GetFile(targetPath)
			if !bytes.Equal(data, []byte(unpatchedRC)) {
				t.Error("patch must never touch the file off Darwin")
			}
		})
	}
}

func TestApply_TargetMissingIsFatal(t *testing.T) {
	p := New(system.NewMockFS(), platform.Darwin, "python3")

	err := p.Apply("/work/venv")
	if err == nil {
		t.Fatal("Apply() must fail visibly when the target is absent")
	}
	if errors.GetExitCode(err) != errors.ExitPatch {
		t.Errorf("exit code = %d, want ExitPatch", errors.GetExitCode(err))
	}
}

func TestApply_AtomicReplace(t *testing.T) {
	fs := system.NewMockFS()
	fs.AddFile(targetPath, []byte(unpatchedRC), 0644)
	fs.RenameErr = fmt.Errorf("device busy")
	p := New(fs, platform.Darwin, "python3")

	if err := p.Apply("/work/venv"); err == nil {
		t.Fatal("Apply() should fail when the atomic replace fails")
	}

	// The original must be intact when the rename never happened.
	data, _ := fs.GetFile(targetPath)
	if !bytes.Equal(data, []byte(unpatchedRC)) {
		t.Error("a failed replace must leave the original file unchanged")
	}
}
