package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestProvisionError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *ProvisionError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitInstall, "editable install failed", fmt.Errorf("underlying error")),
			wantMsg: "editable install failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestProvisionError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitSetup, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitSetup, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestConstructorCodes(t *testing.T) {
	cause := fmt.Errorf("boom")
	tests := []struct {
		name string
		err  *ProvisionError
		code int
	}{
		{"setup failed", SetupFailed("cannot create sandbox", cause), ExitSetup},
		{"interpreter not found", InterpreterNotFound("python3"), ExitSetup},
		{"no environment", NoEnvironment("venv"), ExitNoEnvironment},
		{"upgrade failed", UpgradeFailed(cause), ExitUpgrade},
		{"install failed", InstallFailed("editable install", cause), ExitInstall},
		{"patch target missing", PatchTargetMissing("venv/lib/..."), ExitPatch},
		{"patch failed", PatchFailed(cause), ExitPatch},
		{"hook failed", HookFailed(cause), ExitHook},
		{"not a repository", NotARepository("/tmp/project"), ExitHook},
		{"config error", ConfigError("bad config", cause), ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain error", fmt.Errorf("plain"), ExitGeneralError},
		{"direct provision error", NoEnvironment("venv"), ExitNoEnvironment},
		{"wrapped provision error", fmt.Errorf("context: %w", UpgradeFailed(errors.New("pip"))), ExitUpgrade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
