// Package config holds the provisioning configuration for venvctl.
//
// A Config is resolved once at startup and is immutable for the duration
// of a run. Resolution order, later sources winning:
//
//  1. Compiled-in defaults
//  2. venvctl.toml in the project root (if present)
//  3. VENVCTL_* environment variables
//  4. Command-line flags (applied by the cmd package)
//
// # Configuration file
//
// The optional venvctl.toml mirrors the flag names:
//
//	interpreter  = "python3"
//	sandbox      = "venv"
//	fresh        = true
//	upgrade-pip  = true
//	dev-manifest = "requirements_dev.txt"
//	soft-upgrade = false
package config
