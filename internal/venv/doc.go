// Package venv manages the sandbox lifecycle for venvctl.
//
// A sandbox is an isolated installation root built by the host interpreter's
// venv module. It is recognized by its pyvenv.cfg marker file; a directory
// without the marker is not treated as a sandbox.
//
// # Lifecycle
//
//	venv.Reset(ctx, deps, "python3", "venv")   // destroy + recreate
//	act, err := venv.Activate(fs, "venv")      // bind tool resolution
//	defer act.Deactivate()
//	...
//
// # Activation
//
// Activation replaces the shell-level "activate" script with an explicit
// context object: Environ() yields a child-process environment whose PATH
// resolves against the sandbox bin directory first. Deactivate releases the
// binding and may be called exactly once.
package venv
