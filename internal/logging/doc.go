// Package logging provides logging utilities for venvctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("creating sandbox", "path", path, "interpreter", interpreter)
//	logging.Warn("pip upgrade failed", "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Installing project in editable mode...")
//	logging.UserSuccess("Sandbox ready at %s", path)
//	logging.UserWarning("Installer upgrade failed: %v", err)
//	logging.UserError("Provisioning failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
package logging
