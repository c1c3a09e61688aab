// SPDX-License-Identifier: MPL-2.0

// Package platform holds operating-system name constants and the well-known
// paths the installer inspects on each platform.
package platform
