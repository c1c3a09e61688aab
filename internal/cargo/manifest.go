// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// ManifestName is the Cargo manifest file name.
	ManifestName = "Cargo.toml"
	// ReleaseDir is where "cargo build --release" places binaries.
	ReleaseDir = "target/release"
)

// ErrNoPackage is returned when a manifest has no [package] table.
var ErrNoPackage = errors.New("manifest has no [package] table")

type (
	// Manifest is the subset of Cargo.toml the installer needs.
	Manifest struct {
		Package *Package `toml:"package"`
		Bins    []Target `toml:"bin"`
	}

	// Package is the [package] table.
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	}

	// Target is a [[bin]] entry.
	Target struct {
		Name string `toml:"name"`
		Path string `toml:"path"`
	}
)

// ReadManifest parses the Cargo.toml in dir.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes Cargo.toml content.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	if m.Package == nil {
		return nil, ErrNoPackage
	}
	return &m, nil
}

// BinaryName returns the executable cargo builds for this crate: the [[bin]]
// named after the package, else the package name itself.
func (m *Manifest) BinaryName() string {
	for _, b := range m.Bins {
		if b.Name == m.Package.Name {
			return b.Name
		}
	}
	if m.Package.Name == "" && len(m.Bins) > 0 {
		return m.Bins[0].Name
	}
	return m.Package.Name
}

// ReleaseBinDir returns the directory holding release binaries for the crate
// rooted at dir.
func ReleaseBinDir(dir string) string {
	return filepath.Join(dir, filepath.FromSlash(ReleaseDir))
}
