// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Fatal installer errors carry an ActionableError (operation, resource,
// suggestions) and may point at a catalog Issue whose Markdown guidance is
// rendered with glamour before the process exits.
package issue
