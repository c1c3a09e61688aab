// SPDX-License-Identifier: MPL-2.0

// Package installer implements the darling installation workflow: it checks
// the required tools, detects the Linux distribution, offers the matching
// package-manager module and any applicable integration modules, then
// clones, builds and installs darling.
//
// The flow is strictly sequential. External processes go through
// runner.Runner, questions through Prompter, and changes to PATH and the
// shell profile are expressed as an EnvironmentEffect applied by an
// Environment, so the whole flow can be driven from tests with scripted
// answers and fake processes.
package installer
