// SPDX-License-Identifier: MPL-2.0

// Package shellprofile edits the user's shell startup file so new shells find
// the darling binary on PATH.
package shellprofile
