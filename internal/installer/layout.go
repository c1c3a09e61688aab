// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"path/filepath"
	"strings"

	"github.com/darling-package-manager/darling-installer/internal/config"
	"github.com/darling-package-manager/darling-installer/internal/issue"
	"github.com/darling-package-manager/darling-installer/internal/source"
)

// Layout holds the absolute paths an installation touches.
type Layout struct {
	Home        string
	ShareDir    string
	WorkDir     string
	ProfilePath string
}

// NewLayout resolves the configured locations against home. Configured
// absolute paths are used as they are.
func NewLayout(home string, cfg *config.Config) (Layout, error) {
	if strings.TrimSpace(home) == "" {
		return Layout{}, issue.NewErrorContext().
			WithOperation("locate home directory").
			WithSuggestion("Set HOME to your home directory and run the installer again").
			Wrap(ErrHomeNotSet).
			BuildError()
	}

	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(home, filepath.FromSlash(p))
	}

	return Layout{
		Home:        home,
		ShareDir:    resolve(cfg.ShareDir),
		WorkDir:     resolve(cfg.WorkDir),
		ProfilePath: resolve(cfg.ShellProfile),
	}, nil
}

// SourceDir is where the darling checkout lives after installation.
func (l Layout) SourceDir() string {
	return filepath.Join(l.ShareDir, "source")
}

// CheckoutDir is where a clone of url lands inside the working directory.
func (l Layout) CheckoutDir(url string) string {
	return filepath.Join(l.WorkDir, source.CheckoutName(url))
}

// DisplayProfile renders the profile path relative to home as "~/...".
func (l Layout) DisplayProfile() string {
	rel, err := filepath.Rel(l.Home, l.ProfilePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return l.ProfilePath
	}
	return "~/" + filepath.ToSlash(rel)
}
