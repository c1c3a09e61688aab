// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"context"
	"fmt"

	"github.com/darling-package-manager/darling-installer/internal/runner"
)

// Registry queries crates.io through "cargo search".
type Registry struct {
	Runner  runner.Runner
	Product string
}

// PackageName returns the registry name of the distro implementation.
func (r *Registry) PackageName(distroID string) string {
	return r.Product + "-" + distroID
}

// HasImplementation reports whether "cargo search <product>-<id>" printed
// anything. Only the emptiness of stdout counts: a search that fails
// without output (e.g. offline) is indistinguishable from "not found".
func (r *Registry) HasImplementation(ctx context.Context, distroID string) (bool, error) {
	res := r.Runner.Output(ctx, runner.Invocation{
		Name: "cargo",
		Args: []string{"search", r.PackageName(distroID)},
	})
	if !res.Started {
		return false, fmt.Errorf("search registry for %s: %w", r.PackageName(distroID), res.Err)
	}
	return res.Stdout != "", nil
}
