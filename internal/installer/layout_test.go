// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/darling-package-manager/darling-installer/internal/config"
)

func TestNewLayout(t *testing.T) {
	t.Parallel()

	home := filepath.FromSlash("/home/ada")
	l, err := NewLayout(home, config.DefaultConfig())
	if err != nil {
		t.Fatalf("NewLayout() returned error: %v", err)
	}

	checks := map[string]string{
		"ShareDir":    filepath.Join(home, ".local", "share", "darling"),
		"WorkDir":     filepath.Join(home, ".tmp", "darling"),
		"ProfilePath": filepath.Join(home, ".bashrc"),
		"SourceDir":   filepath.Join(home, ".local", "share", "darling", "source"),
		"CheckoutDir": filepath.Join(home, ".tmp", "darling", "darling"),
	}
	got := map[string]string{
		"ShareDir":    l.ShareDir,
		"WorkDir":     l.WorkDir,
		"ProfilePath": l.ProfilePath,
		"SourceDir":   l.SourceDir(),
		"CheckoutDir": l.CheckoutDir(config.DefaultRepositoryURL),
	}
	for k, want := range checks {
		if got[k] != want {
			t.Errorf("%s = %q, want %q", k, got[k], want)
		}
	}
	if l.DisplayProfile() != "~/.bashrc" {
		t.Errorf("DisplayProfile() = %q, want ~/.bashrc", l.DisplayProfile())
	}
}

func TestNewLayout_AbsoluteOverride(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.ShellProfile = filepath.FromSlash("/etc/profile.d/darling.sh")

	l, err := NewLayout(filepath.FromSlash("/home/ada"), cfg)
	if err != nil {
		t.Fatalf("NewLayout() returned error: %v", err)
	}
	if l.ProfilePath != cfg.ShellProfile || l.DisplayProfile() != cfg.ShellProfile {
		t.Errorf("ProfilePath = %q, DisplayProfile = %q", l.ProfilePath, l.DisplayProfile())
	}
}

func TestNewLayout_HomeNotSet(t *testing.T) {
	t.Parallel()

	if _, err := NewLayout("", config.DefaultConfig()); !errors.Is(err, ErrHomeNotSet) {
		t.Errorf("NewLayout(\"\") error = %v, want ErrHomeNotSet", err)
	}
}
