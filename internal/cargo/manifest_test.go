// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/darling-package-manager/darling-installer/internal/testutil"
)

func TestBinaryName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest string
		want     string
	}{
		{
			name: "package only",
			manifest: `[package]
name = "darling"
version = "0.1.0"
`,
			want: "darling",
		},
		{
			name: "matching bin among several",
			manifest: `[package]
name = "darling"

[[bin]]
name = "darling-helper"
path = "src/helper.rs"

[[bin]]
name = "darling"
path = "src/main.rs"
`,
			want: "darling",
		},
		{
			name: "no matching bin falls back to package",
			manifest: `[package]
name = "darling"

[[bin]]
name = "other"
`,
			want: "darling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := ParseManifest([]byte(tt.manifest))
			if err != nil {
				t.Fatalf("ParseManifest() returned error: %v", err)
			}
			if got := m.BinaryName(); got != tt.want {
				t.Errorf("BinaryName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseManifest_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ParseManifest([]byte("[workspace]\nmembers = []\n")); !errors.Is(err, ErrNoPackage) {
		t.Errorf("workspace manifest error = %v, want ErrNoPackage", err)
	}
	if _, err := ParseManifest([]byte("[package\nname=")); err == nil {
		t.Error("invalid TOML should fail")
	}
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, ManifestName), "[package]\nname = \"darling\"\n")

	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest() returned error: %v", err)
	}
	if m.Package.Name != "darling" {
		t.Errorf("Package.Name = %q", m.Package.Name)
	}

	if _, err := ReadManifest(t.TempDir()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing manifest error = %v, want os.ErrNotExist", err)
	}
}

func TestReleaseBinDir(t *testing.T) {
	t.Parallel()

	want := filepath.Join("src", "target", "release")
	if got := ReleaseBinDir("src"); got != want {
		t.Errorf("ReleaseBinDir() = %q, want %q", got, want)
	}
}
