// Package errors provides typed errors with exit codes for venvctl.
//
// # Error Types
//
// ProvisionError is the base error type that wraps an error with an exit code:
//
//	type ProvisionError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different failure categories:
//
//	ExitSuccess       = 0  // Success
//	ExitGeneralError  = 1  // General/unknown errors
//	ExitSetup         = 2  // Sandbox cannot be created or reset
//	ExitNoEnvironment = 3  // No sandbox to activate
//	ExitUpgrade       = 4  // Installer self-upgrade failed
//	ExitInstall       = 5  // Project or dev-dependency install failed
//	ExitPatch         = 6  // Platform patch failed (target missing, write error)
//	ExitHook          = 7  // Hook registration failed
//	ExitConfigError   = 8  // Configuration error
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.SetupFailed("interpreter not found", err)
//	errors.NoEnvironment("/path/to/venv")
//	errors.InstallFailed("editable install", err)
//	errors.PatchTargetMissing(path)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
