// SPDX-License-Identifier: MPL-2.0

// Package runner wraps external process execution behind a small interface.
//
// Every invocation returns a Result that separates "could not start" from
// "started and exited with a status", so callers can decide which failures
// are fatal. ExecRunner is the production implementation; Recorder is an
// in-memory fake for workflow tests.
package runner
