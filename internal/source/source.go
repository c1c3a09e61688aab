// SPDX-License-Identifier: MPL-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/darling-package-manager/darling-installer/internal/runner"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// ErrCloneFailed wraps every in-process clone failure.
var ErrCloneFailed = errors.New("clone failed")

type (
	// Cloner fetches a repository into a working directory. The checkout is
	// created at filepath.Join(dir, CheckoutName(url)), the same place
	// "git clone <url>" run inside dir would put it.
	Cloner interface {
		Clone(ctx context.Context, url, dir string) error
	}

	// GitCLI clones by running the git client through a Runner.
	GitCLI struct {
		Runner runner.Runner
	}

	// GoGit clones in-process with go-git.
	GoGit struct {
		// Progress receives the sideband progress output (nil to discard).
		Progress io.Writer

		auth transport.AuthMethod
	}
)

// NewGoGit creates an in-process cloner, picking up a token from the
// environment for private mirrors.
func NewGoGit(progress io.Writer) *GoGit {
	return &GoGit{Progress: progress, auth: httpAuthFromEnv()}
}

// Clone runs "git clone <url>" with dir as the working directory. The
// returned error is the Runner result's Failure: it wraps
// runner.ErrNotStarted when git could not be spawned and
// runner.ErrNonZeroExit when it exited with a failure status.
func (g *GitCLI) Clone(ctx context.Context, url, dir string) error {
	res := g.Runner.Run(ctx, runner.Invocation{
		Name: "git",
		Args: []string{"clone", url},
		Dir:  dir,
	})
	return res.Failure()
}

// Clone fetches url into dir with go-git.
func (g *GoGit) Clone(ctx context.Context, url, dir string) error {
	dest := filepath.Join(dir, CheckoutName(url))

	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:      url,
		Auth:     g.auth,
		Progress: g.Progress,
	})
	if err != nil {
		// Leave no half-written checkout behind for the rename step.
		_ = os.RemoveAll(dest)
		return fmt.Errorf("%w: %s: %w", ErrCloneFailed, url, err)
	}
	return nil
}

// CheckoutName returns the directory name git derives from a clone URL:
// the last path element without a trailing ".git".
func CheckoutName(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if i := strings.LastIndex(trimmed, ":"); i >= 0 && !strings.Contains(trimmed, "://") {
		// scp-like syntax: git@host:owner/repo.git
		trimmed = trimmed[i+1:]
	}
	return strings.TrimSuffix(path.Base(trimmed), ".git")
}

func httpAuthFromEnv() transport.AuthMethod {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return &http.BasicAuth{
			Username: "x-access-token",
			Password: token,
		}
	}
	if token := os.Getenv("GIT_TOKEN"); token != "" {
		return &http.BasicAuth{
			Username: "git",
			Password: token,
		}
	}
	return nil
}
