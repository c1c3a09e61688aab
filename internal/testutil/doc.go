// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests that fail fast on setup errors:
// environment variable management (MustSetenv, MustUnsetenv, SetHomeDir) and
// filesystem fixtures (MustChdir, MustMkdirAll, MustWriteFile, MustReadFile).
package testutil
