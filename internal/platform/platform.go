// Package platform resolves the host platform into a closed tag set.
//
// The tag is resolved once at startup; guard conditions elsewhere in the
// workflow match on the tag instead of repeating GOOS string comparisons.
package platform

import goruntime "runtime"

// Tag identifies the host platform class relevant to provisioning.
type Tag string

const (
	// Darwin hosts need the matplotlib backend patch.
	Darwin Tag = "darwin"
	Linux  Tag = "linux"
	Other  Tag = "other"
)

// Resolve maps runtime.GOOS onto a Tag.
func Resolve() Tag {
	return FromGOOS(goruntime.GOOS)
}

// FromGOOS maps a GOOS string onto a Tag. Exposed so tests can exercise
// non-host platforms.
func FromGOOS(goos string) Tag {
	switch goos {
	case "darwin":
		return Darwin
	case "linux":
		return Linux
	default:
		return Other
	}
}

// NeedsBackendPatch reports whether the matplotlib backend patch applies.
func (t Tag) NeedsBackendPatch() bool {
	return t == Darwin
}
