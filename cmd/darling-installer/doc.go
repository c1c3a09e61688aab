// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for darling-installer.
//
// The root command runs the interactive installation; the config
// subcommands inspect and scaffold the optional CUE configuration file.
package cmd
