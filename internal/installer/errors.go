// SPDX-License-Identifier: MPL-2.0

package installer

import "errors"

var (
	// ErrMissingRequirement is returned when a required tool is not on PATH.
	ErrMissingRequirement = errors.New("missing requirement")
	// ErrOSReleaseUnreadable is returned when the OS release file exists but cannot be read.
	ErrOSReleaseUnreadable = errors.New("OS release file unreadable")
	// ErrHomeNotSet is returned when HOME is empty or unset.
	ErrHomeNotSet = errors.New("HOME is not set")
	// ErrCancelled is returned when the user declines a gating confirmation.
	ErrCancelled = errors.New("installation cancelled")
	// ErrDirectorySetup is returned when the install directories cannot be prepared.
	ErrDirectorySetup = errors.New("failed to prepare installation directories")
	// ErrCloneFailed is returned when the sources cannot be fetched.
	ErrCloneFailed = errors.New("failed to download the darling sources")
	// ErrBuildFailed is returned when the build cannot run.
	ErrBuildFailed = errors.New("failed to build darling")
	// ErrShellProfile is returned when the PATH export cannot be recorded.
	ErrShellProfile = errors.New("failed to update shell profile")
	// ErrUnknownModule is returned for a --module name the catalog does not know.
	ErrUnknownModule = errors.New("unknown module")
	// ErrModuleNotApplicable is returned for a --module whose tools are not installed.
	ErrModuleNotApplicable = errors.New("module not applicable")
	// ErrNoInput is returned when stdin closes before a module selection is read.
	ErrNoInput = errors.New("no input")
)
