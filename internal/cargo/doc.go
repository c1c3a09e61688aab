// SPDX-License-Identifier: MPL-2.0

// Package cargo reads the parts of a Cargo manifest that decide where the
// built darling binary ends up.
package cargo
