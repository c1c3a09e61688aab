// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// UserConfirmed reads one line and reports whether it is "y" once trimmed
// and lowercased. "yes", an empty line and end of input are declines.
func UserConfirmed(r *bufio.Reader) (bool, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y", nil
}
