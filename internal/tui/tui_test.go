// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"testing"

	"github.com/darling-package-manager/darling-installer/internal/testutil"
)

func TestTheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme Theme
		want  bool
	}{
		{ThemeDefault, true},
		{ThemeCharm, true},
		{ThemeDracula, true},
		{ThemeCatppuccin, true},
		{ThemeBase16, true},
		{"", false},
		{"DEFAULT", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			t.Parallel()
			ok, errs := tt.theme.IsValid()
			if ok != tt.want {
				t.Errorf("Theme(%q).IsValid() = %v, want %v", tt.theme, ok, tt.want)
			}
			if !tt.want && (len(errs) == 0 || !errors.Is(errs[0], ErrInvalidTheme)) {
				t.Errorf("Theme(%q).IsValid() errors = %v, want ErrInvalidTheme", tt.theme, errs)
			}
		})
	}
}

func TestGetHuhTheme(t *testing.T) {
	t.Parallel()

	for _, theme := range []Theme{ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16, "unknown"} {
		if getHuhTheme(theme) == nil {
			t.Errorf("getHuhTheme(%q) returned nil", theme)
		}
	}
}

func TestShouldUseAccessible(t *testing.T) {
	t.Cleanup(testutil.MustUnsetenv(t, "ACCESSIBLE"))

	if !ShouldUseAccessible(Config{Accessible: true}) {
		t.Error("explicit Accessible should always win")
	}

	t.Cleanup(testutil.MustSetenv(t, "ACCESSIBLE", "1"))
	if !ShouldUseAccessible(Config{}) {
		t.Error("ACCESSIBLE env should enable accessible mode")
	}
}
