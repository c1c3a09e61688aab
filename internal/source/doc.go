// SPDX-License-Identifier: MPL-2.0

// Package source fetches the darling sources, either through the git client
// or in-process with go-git.
package source
