// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"fmt"
	"io"

	"github.com/darling-package-manager/darling-installer/internal/issue"
)

// RequirementChecker reports whether tools resolve on the search path.
type RequirementChecker struct {
	LookPath func(string) (string, error)
	Out      io.Writer
}

// HasRequirement reports whether command resolves on PATH and prints a
// status line either way. Absence is a normal result, never an error.
func (c *RequirementChecker) HasRequirement(command string) bool {
	if _, err := c.LookPath(command); err != nil {
		fmt.Fprintf(c.Out, "\t%s is %s\n", nameStyle.Render(command), failStyle.Render("not installed ✘"))
		return false
	}
	fmt.Fprintf(c.Out, "\t%s is %s\n", nameStyle.Render(command), okStyle.Render("installed ✔"))
	return true
}

// CheckAll checks commands in order and stops at the first missing one.
func (c *RequirementChecker) CheckAll(commands []string) error {
	for _, cmd := range commands {
		if !c.HasRequirement(cmd) {
			return issue.NewErrorContext().
				WithOperation("check requirements").
				WithResource(cmd).
				WithSuggestion(fmt.Sprintf("Missing requirement %s. Please install it before proceeding.", cmd)).
				Wrap(fmt.Errorf("%w: %s", ErrMissingRequirement, cmd)).
				BuildError()
		}
	}
	return nil
}
