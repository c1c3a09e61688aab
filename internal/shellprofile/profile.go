// SPDX-License-Identifier: MPL-2.0

package shellprofile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ExportLine returns the bash statement that appends dir to PATH. Directories
// made only of shell-safe characters stay inside the double quotes; anything
// else is quoted separately so the line cannot expand or break.
func ExportLine(dir string) (string, error) {
	quoted, err := syntax.Quote(dir, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("quote %q: %w", dir, err)
	}
	if quoted == dir {
		return fmt.Sprintf("export PATH=\"$PATH:%s\"", dir), nil
	}
	return fmt.Sprintf("export PATH=\"$PATH\":%s", quoted), nil
}

// Append adds line to the profile at path, creating the file if needed. The
// file is only ever appended to. It reports false without writing when the
// line is already anywhere in the profile, ignoring surrounding whitespace.
func Append(path, line string) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if containsLine(existing, line) {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}

	var buf strings.Builder
	if len(existing) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString(line)
	buf.WriteByte('\n')

	if _, err := f.WriteString(buf.String()); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", path, err)
	}
	return true, nil
}

func containsLine(data []byte, line string) bool {
	want := strings.TrimSpace(line)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == want {
			return true
		}
	}
	return false
}
