// SPDX-License-Identifier: MPL-2.0

package source

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/darling-package-manager/darling-installer/internal/runner"
	"github.com/darling-package-manager/darling-installer/internal/testutil"

	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

const darlingURL = "https://github.com/darling-package-manager/darling.git"

func TestCheckoutName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{darlingURL, "darling"},
		{"https://github.com/darling-package-manager/darling", "darling"},
		{"https://example.com/mirror/darling.git/", "darling"},
		{"git@github.com:darling-package-manager/darling.git", "darling"},
		{"/srv/git/darling-fork.git", "darling-fork"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			if got := CheckoutName(tt.url); got != tt.want {
				t.Errorf("CheckoutName(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestGitCLI_Clone(t *testing.T) {
	rec := runner.NewRecorder("git")
	dir := t.TempDir()

	if err := (&GitCLI{Runner: rec}).Clone(context.Background(), darlingURL, dir); err != nil {
		t.Fatalf("Clone() returned error: %v", err)
	}

	if len(rec.Invocations) != 1 {
		t.Fatalf("got %d invocations, want 1", len(rec.Invocations))
	}
	inv := rec.Invocations[0]
	if inv.String() != "git clone "+darlingURL || inv.Dir != dir {
		t.Errorf("invocation = %q in %q", inv.String(), inv.Dir)
	}
}

func TestGitCLI_CloneFailures(t *testing.T) {
	tests := []struct {
		name   string
		result runner.Result
		want   error
	}{
		{"not started", runner.Result{Err: runner.ErrNotStarted}, runner.ErrNotStarted},
		{"exit 128", runner.Result{Started: true, HasExitCode: true, ExitCode: 128}, runner.ErrNonZeroExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runner.NewRecorder("git")
			rec.Results["git"] = tt.result

			err := (&GitCLI{Runner: rec}).Clone(context.Background(), darlingURL, t.TempDir())
			if !errors.Is(err, tt.want) {
				t.Errorf("Clone() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGoGit_CloneFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(t.TempDir(), "does-not-exist.git")

	err := NewGoGit(nil).Clone(context.Background(), missing, dir)
	if !errors.Is(err, ErrCloneFailed) {
		t.Fatalf("Clone() error = %v, want ErrCloneFailed", err)
	}
	matches, globErr := filepath.Glob(filepath.Join(dir, "*"))
	if globErr != nil {
		t.Fatal(globErr)
	}
	if len(matches) != 0 {
		t.Errorf("failed clone left %v behind", matches)
	}
}

func TestHTTPAuthFromEnv(t *testing.T) {
	t.Cleanup(testutil.MustUnsetenv(t, "GIT_TOKEN"))
	t.Cleanup(testutil.MustSetenv(t, "GITHUB_TOKEN", "ghp_test"))

	auth, ok := httpAuthFromEnv().(*http.BasicAuth)
	if !ok {
		t.Fatal("expected basic auth from GITHUB_TOKEN")
	}
	if auth.Username != "x-access-token" || auth.Password != "ghp_test" {
		t.Errorf("auth = %+v", auth)
	}

	t.Cleanup(testutil.MustUnsetenv(t, "GITHUB_TOKEN"))
	if httpAuthFromEnv() != nil {
		t.Error("expected no auth without tokens")
	}
}
