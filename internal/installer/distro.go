// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/darling-package-manager/darling-installer/internal/issue"
)

// osReleaseIDPattern only matches ID= at the start of a line, so VERSION_ID
// and BUILD_ID never shadow it.
var osReleaseIDPattern = regexp.MustCompile(`(?m)^ID=(\S+)`)

// DistroDetector reads the distribution id from an os-release file.
type DistroDetector struct {
	Path     string
	ReadFile func(string) ([]byte, error)
}

// NewDistroDetector creates a detector for the os-release file at path.
func NewDistroDetector(path string) *DistroDetector {
	return &DistroDetector{Path: path, ReadFile: os.ReadFile}
}

// Detect returns the distribution id. ok is false when the file does not
// exist or has no ID line. Any other read failure is returned as an error.
func (d *DistroDetector) Detect() (id string, ok bool, err error) {
	data, err := d.ReadFile(d.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, issue.NewErrorContext().
			WithOperation("read OS release file").
			WithResource(d.Path).
			WithSuggestion("Check the file permissions").
			WithSuggestion("Point --os-release at a readable copy of the file").
			Wrap(fmt.Errorf("%w: %w", ErrOSReleaseUnreadable, err)).
			BuildError()
	}

	id, ok = ParseOSReleaseID(string(data))
	return id, ok, nil
}

// ParseOSReleaseID extracts the ID field from os-release content, dropping
// surrounding quotes.
func ParseOSReleaseID(content string) (string, bool) {
	m := osReleaseIDPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	id := strings.Trim(m[1], `"'`)
	if id == "" {
		return "", false
	}
	return id, true
}
