// Package provision orchestrates the environment provisioning workflow.
//
// A Provisioner executes, strictly in order:
//
//  1. Sandbox reset (when fresh install is requested)
//  2. Activation
//  3. Installer self-upgrade (when requested)
//  4. Editable project install
//  5. Dev dependency install
//  6. Platform backend patch (Darwin only)
//  7. Commit hook registration
//  8. Deactivation
//
// There is no branching back and no retries. Every fatal condition
// propagates immediately; deactivation is deferred at the moment activation
// succeeds, so it runs exactly once on the success path and on every failure
// path. Failures before activation have nothing to deactivate.
package provision
