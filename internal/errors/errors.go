package errors

import (
	"errors"
	"fmt"
)

// Exit codes for venvctl
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitSetup         = 2
	ExitNoEnvironment = 3
	ExitUpgrade       = 4
	ExitInstall       = 5
	ExitPatch         = 6
	ExitHook          = 7
	ExitConfigError   = 8
)

// ProvisionError is the base error type for venvctl
type ProvisionError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ProvisionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ProvisionError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ProvisionError) ExitCode() int {
	return e.Code
}

// New creates a new ProvisionError
func New(code int, message string) *ProvisionError {
	return &ProvisionError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ProvisionError
func Wrap(code int, message string, cause error) *ProvisionError {
	return &ProvisionError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// SetupFailed returns an error for sandbox reset/creation failures
func SetupFailed(message string, cause error) *ProvisionError {
	return Wrap(ExitSetup, message, cause)
}

// InterpreterNotFound returns an error for a missing host interpreter
func InterpreterNotFound(name string) *ProvisionError {
	return New(ExitSetup, fmt.Sprintf("interpreter not found on PATH: %s", name))
}

// NoEnvironment returns an error when there is no sandbox to activate
func NoEnvironment(path string) *ProvisionError {
	return New(ExitNoEnvironment, fmt.Sprintf("no environment at %s (run with fresh install to create one)", path))
}

// UpgradeFailed returns an error for installer self-upgrade failures
func UpgradeFailed(cause error) *ProvisionError {
	return Wrap(ExitUpgrade, "installer upgrade failed", cause)
}

// InstallFailed returns an error for project or dev-dependency install failures
func InstallFailed(what string, cause error) *ProvisionError {
	return Wrap(ExitInstall, fmt.Sprintf("%s failed", what), cause)
}

// PatchTargetMissing returns an error when the patch target file is absent
func PatchTargetMissing(path string) *ProvisionError {
	return New(ExitPatch, fmt.Sprintf("patch target missing: %s", path))
}

// PatchFailed returns an error for patch write failures
func PatchFailed(cause error) *ProvisionError {
	return Wrap(ExitPatch, "backend patch failed", cause)
}

// HookFailed returns an error for hook registration failures
func HookFailed(cause error) *ProvisionError {
	return Wrap(ExitHook, "hook registration failed", cause)
}

// NotARepository returns an error when the project root is not under version control
func NotARepository(path string) *ProvisionError {
	return New(ExitHook, fmt.Sprintf("not a git repository: %s", path))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ProvisionError {
	return Wrap(ExitConfigError, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var perr *ProvisionError
	if errors.As(err, &perr) {
		return perr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
