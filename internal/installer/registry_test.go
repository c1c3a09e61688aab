// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"context"
	"errors"
	"testing"

	"github.com/darling-package-manager/darling-installer/internal/runner"
)

func TestRegistry_HasImplementation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result runner.Result
		want   bool
	}{
		{
			name:   "found",
			result: runner.Result{Started: true, HasExitCode: true, Stdout: "darling-arch = \"0.1.0\"\n"},
			want:   true,
		},
		{
			name:   "empty search",
			result: runner.Result{Started: true, HasExitCode: true},
			want:   false,
		},
		{
			// Offline cargo exits non-zero with nothing on stdout, which
			// reads the same as "no such crate".
			name:   "network failure looks like not found",
			result: runner.Result{Started: true, HasExitCode: true, ExitCode: 101},
			want:   false,
		},
		{
			name:   "output counts even on failure status",
			result: runner.Result{Started: true, HasExitCode: true, ExitCode: 1, Stdout: "x"},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := runner.NewRecorder("cargo")
			rec.Results["cargo"] = tt.result

			reg := &Registry{Runner: rec, Product: "darling"}
			got, err := reg.HasImplementation(context.Background(), "arch")
			if err != nil {
				t.Fatalf("HasImplementation() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasImplementation() = %v, want %v", got, tt.want)
			}
			if !rec.Called("cargo", "search", "darling-arch") {
				t.Errorf("expected cargo search darling-arch, got %v", rec.Invocations)
			}
		})
	}
}

func TestRegistry_SpawnFailure(t *testing.T) {
	t.Parallel()

	rec := runner.NewRecorder()
	rec.Results["cargo"] = runner.Result{Err: runner.ErrNotStarted}

	_, err := (&Registry{Runner: rec, Product: "darling"}).HasImplementation(context.Background(), "arch")
	if !errors.Is(err, runner.ErrNotStarted) {
		t.Errorf("HasImplementation() error = %v, want ErrNotStarted", err)
	}
}
