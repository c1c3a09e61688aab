// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// DefaultOSReleasePath is the os-release(5) file read for distribution detection.
const DefaultOSReleasePath = "/etc/os-release"

// HasOSRelease reports whether goos is expected to ship an os-release file.
// The installer still reads the configured path on other systems; a missing
// file there just means no distribution module is offered.
func HasOSRelease(goos string) bool {
	return goos == Linux
}
