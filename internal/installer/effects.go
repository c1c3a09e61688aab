// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/darling-package-manager/darling-installer/internal/shellprofile"

	"github.com/charmbracelet/log"
)

type (
	// EnvironmentEffect is the change an installation makes to the user's
	// environment. The executor computes it; an Environment applies it.
	EnvironmentEffect struct {
		// PathAppend is added to the end of PATH.
		PathAppend string
		// ProfilePath is the shell startup file that persists the change.
		ProfilePath string
		// ProfileLine is appended to ProfilePath.
		ProfileLine string
	}

	// Environment applies environment effects.
	Environment interface {
		Apply(effect EnvironmentEffect) error
	}

	// OSEnvironment applies effects to the running process and the real
	// shell profile.
	OSEnvironment struct {
		Logger *log.Logger
	}
)

// NewEnvironmentEffect builds the effect that puts binDir on PATH.
func NewEnvironmentEffect(binDir, profilePath string) (EnvironmentEffect, error) {
	line, err := shellprofile.ExportLine(binDir)
	if err != nil {
		return EnvironmentEffect{}, err
	}
	return EnvironmentEffect{PathAppend: binDir, ProfilePath: profilePath, ProfileLine: line}, nil
}

// Apply appends PathAppend to this process's PATH and records the export
// line in the profile.
func (e *OSEnvironment) Apply(effect EnvironmentEffect) error {
	if effect.PathAppend != "" {
		path := os.Getenv("PATH")
		if !slices.Contains(filepath.SplitList(path), effect.PathAppend) {
			if path != "" {
				path += string(os.PathListSeparator)
			}
			if err := os.Setenv("PATH", path+effect.PathAppend); err != nil {
				return fmt.Errorf("set PATH: %w", err)
			}
		}
	}

	if effect.ProfilePath == "" {
		return nil
	}
	appended, err := shellprofile.Append(effect.ProfilePath, effect.ProfileLine)
	if err != nil {
		return err
	}
	if !appended && e.Logger != nil {
		e.Logger.Debug("profile already exports darling", "profile", effect.ProfilePath)
	}
	return nil
}
