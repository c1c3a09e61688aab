// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/darling-package-manager/darling-installer/pkg/platform"
)

const (
	// CloneBackendGit shells out to the git client.
	CloneBackendGit CloneBackend = "git"
	// CloneBackendGoGit clones in-process with go-git.
	CloneBackendGoGit CloneBackend = "go-git"

	// ThemeDefault is the base huh theme used for the module picker.
	ThemeDefault Theme = "default"

	// DefaultProduct is the package manager the installer builds.
	DefaultProduct = "darling"
	// DefaultRepositoryURL is the upstream darling repository.
	DefaultRepositoryURL = "https://github.com/darling-package-manager/darling.git"
)

var (
	// ErrInvalidCloneBackend is returned when a CloneBackend value is not recognized.
	ErrInvalidCloneBackend = errors.New("invalid clone backend")
	// ErrInvalidModuleEntry is returned for malformed extra catalog modules.
	ErrInvalidModuleEntry = errors.New("invalid module entry")
)

type (
	// CloneBackend selects how the darling sources are fetched.
	CloneBackend string

	// Theme names a huh theme for the module picker.
	Theme string

	// InvalidCloneBackendError is returned when a CloneBackend value is not recognized.
	// It wraps ErrInvalidCloneBackend for errors.Is() compatibility.
	InvalidCloneBackendError struct {
		Value CloneBackend
	}

	// Config holds the installer configuration.
	Config struct {
		// Product is the package manager name; it prefixes registry lookups
		// (<product>-<distro>) and names the installed binary.
		Product string `json:"product" mapstructure:"product"`
		// RepositoryURL is cloned into WorkDir.
		RepositoryURL string `json:"repository_url" mapstructure:"repository_url"`
		// Requirements must all resolve on PATH before anything is installed.
		Requirements []string `json:"requirements" mapstructure:"requirements"`
		// OSReleasePath is read to detect the distribution.
		OSReleasePath string `json:"os_release_path" mapstructure:"os_release_path"`
		// CloneBackend selects the git client or go-git.
		CloneBackend CloneBackend `json:"clone_backend" mapstructure:"clone_backend"`
		// ShareDir is the permanent install location, relative to HOME.
		ShareDir string `json:"share_dir" mapstructure:"share_dir"`
		// WorkDir is the temporary clone location, relative to HOME.
		WorkDir string `json:"work_dir" mapstructure:"work_dir"`
		// ShellProfile receives the PATH export line, relative to HOME.
		ShellProfile string `json:"shell_profile" mapstructure:"shell_profile"`
		// Strict makes a non-zero clone or build exit status fatal.
		Strict bool `json:"strict" mapstructure:"strict"`
		// Modules are appended to the built-in module catalog.
		Modules []ModuleEntry `json:"modules" mapstructure:"modules"`
		// UI configures prompts and output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// ModuleEntry declares an extra optional integration module.
	ModuleEntry struct {
		Name         string   `json:"name" mapstructure:"name"`
		ReadableName string   `json:"readable_name" mapstructure:"readable_name"`
		Commands     []string `json:"commands" mapstructure:"commands"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Accessible forces the line-based module picker.
		Accessible bool `json:"accessible" mapstructure:"accessible"`
		// Theme selects the huh theme for the module picker.
		Theme Theme `json:"theme" mapstructure:"theme"`
	}
)

// Error implements the error interface.
func (e *InvalidCloneBackendError) Error() string {
	return fmt.Sprintf("invalid clone backend %q (valid: %s, %s)", e.Value, CloneBackendGit, CloneBackendGoGit)
}

// Unwrap returns ErrInvalidCloneBackend for errors.Is() compatibility.
func (e *InvalidCloneBackendError) Unwrap() error { return ErrInvalidCloneBackend }

// Validate returns an error if the backend is not recognized.
func (b CloneBackend) Validate() error {
	switch b {
	case CloneBackendGit, CloneBackendGoGit:
		return nil
	default:
		return &InvalidCloneBackendError{Value: b}
	}
}

// String returns the string representation of the CloneBackend.
func (b CloneBackend) String() string { return string(b) }

// Validate checks constraints the CUE schema cannot express: unique module
// names and a known clone backend.
func (c *Config) Validate() error {
	if err := c.CloneBackend.Validate(); err != nil {
		return err
	}

	seen := make(map[string]int, len(c.Modules))
	for i, m := range c.Modules {
		if strings.TrimSpace(m.Name) == "" || len(m.Commands) == 0 {
			return fmt.Errorf("%w: modules[%d] needs a name and at least one command", ErrInvalidModuleEntry, i)
		}
		if first, ok := seen[m.Name]; ok {
			return fmt.Errorf("%w: modules[%d]: duplicate name %q (same as modules[%d])", ErrInvalidModuleEntry, i, m.Name, first)
		}
		seen[m.Name] = i
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Product:       DefaultProduct,
		RepositoryURL: DefaultRepositoryURL,
		Requirements:  []string{"git", "cargo"},
		OSReleasePath: platform.DefaultOSReleasePath,
		CloneBackend:  CloneBackendGit,
		ShareDir:      ".local/share/darling",
		WorkDir:       ".tmp/darling",
		ShellProfile:  ".bashrc",
		Strict:        false,
		Modules:       []ModuleEntry{},
		UI: UIConfig{
			Verbose:    false,
			Accessible: false,
			Theme:      ThemeDefault,
		},
	}
}
