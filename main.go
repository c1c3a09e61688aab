// SPDX-License-Identifier: MPL-2.0

// Command darling-installer installs the darling package manager.
package main

import cmd "github.com/darling-package-manager/darling-installer/cmd/darling-installer"

func main() {
	cmd.Execute()
}
