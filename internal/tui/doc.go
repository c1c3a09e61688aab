// SPDX-License-Identifier: MPL-2.0

// Package tui wraps charmbracelet/huh forms for the installer's interactive
// prompts. Forms fall back to huh's accessible (line-based) mode when stdin
// is not a terminal or ACCESSIBLE is set.
package tui
