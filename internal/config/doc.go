// SPDX-License-Identifier: MPL-2.0

// Package config handles installer configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/darling-installer/config.cue
// (~/.config when unset; ~/Library/Application Support on macOS, %APPDATA% on
// Windows) or from an explicit --config path. The file is validated against
// the embedded config_schema.cue before being merged over the defaults, so an
// empty or missing file yields DefaultConfig.
package config
