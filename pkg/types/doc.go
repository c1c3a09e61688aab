// SPDX-License-Identifier: MPL-2.0

// Package types contains small value types shared by the installer packages.
package types
