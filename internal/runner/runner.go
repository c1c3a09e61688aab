// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/darling-package-manager/darling-installer/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// LookPathFunc resolves an executable name on the search path.
	LookPathFunc func(file string) (string, error)

	// Invocation describes one external command.
	Invocation struct {
		// Name is the executable name or path.
		Name string
		// Args are passed verbatim after Name.
		Args []string
		// Dir is the working directory (empty means the current directory).
		Dir string
		// Env, when non-nil, replaces the inherited environment.
		Env []string
	}

	// Result reports how an invocation ended. Started is false when the
	// process could not be spawned; in that case Err explains why and
	// HasExitCode is false.
	Result struct {
		Started     bool
		ExitCode    types.ExitCode
		HasExitCode bool
		Stdout      string
		Err         error
	}

	// Runner spawns external processes and waits for them.
	Runner interface {
		LookPath(name string) (string, error)
		// Run inherits the runner's stdio and blocks until the process exits.
		Run(ctx context.Context, inv Invocation) Result
		// Output captures stdout and blocks until the process exits.
		Output(ctx context.Context, inv Invocation) Result
	}

	// Option configures an ExecRunner.
	Option func(*ExecRunner)

	// ExecRunner is the os/exec backed Runner.
	ExecRunner struct {
		execCommand ExecCommandFunc
		lookPath    LookPathFunc
		stdin       io.Reader
		stdout      io.Writer
		stderr      io.Writer
		logger      *log.Logger
	}
)

var (
	// ErrNotStarted marks a Result whose process never spawned.
	ErrNotStarted = errors.New("process not started")
	// ErrNonZeroExit marks a process that ran but reported failure.
	ErrNonZeroExit = errors.New("non-zero exit status")
)

// ExitStatusError is returned by Result.Failure for a process that exited
// with a non-zero status. It wraps ErrNonZeroExit.
type ExitStatusError struct {
	Code types.ExitCode
}

// Error implements the error interface.
func (e *ExitStatusError) Error() string { return "exit status " + e.Code.String() }

// Unwrap returns ErrNonZeroExit for errors.Is() compatibility.
func (e *ExitStatusError) Unwrap() error { return ErrNonZeroExit }

// WithExecCommand overrides exec.CommandContext.
func WithExecCommand(fn ExecCommandFunc) Option {
	return func(r *ExecRunner) { r.execCommand = fn }
}

// WithLookPath overrides exec.LookPath.
func WithLookPath(fn LookPathFunc) Option {
	return func(r *ExecRunner) { r.lookPath = fn }
}

// WithStdio sets the streams handed to processes started by Run.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *ExecRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets the logger used for debug traces of each invocation.
func WithLogger(logger *log.Logger) Option {
	return func(r *ExecRunner) { r.logger = logger }
}

// New creates an ExecRunner wired to the real process table.
func New(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		execCommand: exec.CommandContext,
		lookPath:    exec.LookPath,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// LookPath resolves name on the search path.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return r.lookPath(name)
}

// Run executes inv with inherited stdio and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) Result {
	cmd := r.command(ctx, inv)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	return r.wait(cmd, inv, nil)
}

// Output executes inv and captures its standard output.
func (r *ExecRunner) Output(ctx context.Context, inv Invocation) Result {
	var stdout bytes.Buffer
	cmd := r.command(ctx, inv)
	cmd.Stdout = &stdout
	cmd.Stderr = r.stderr
	return r.wait(cmd, inv, &stdout)
}

func (r *ExecRunner) command(ctx context.Context, inv Invocation) *exec.Cmd {
	cmd := r.execCommand(ctx, inv.Name, inv.Args...)
	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}
	if inv.Env != nil {
		cmd.Env = inv.Env
	}
	return cmd
}

func (r *ExecRunner) wait(cmd *exec.Cmd, inv Invocation, stdout *bytes.Buffer) Result {
	r.logger.Debug("exec", "cmd", inv.String(), "dir", inv.Dir)

	if err := cmd.Start(); err != nil {
		r.logger.Debug("exec failed to start", "cmd", inv.Name, "error", err)
		return Result{Err: fmt.Errorf("%w: %s: %w", ErrNotStarted, inv.Name, err)}
	}

	res := Result{Started: true}
	err := cmd.Wait()
	if stdout != nil {
		res.Stdout = stdout.String()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.HasExitCode = true
	case errors.As(err, &exitErr):
		res.HasExitCode = exitErr.ExitCode() >= 0
		res.ExitCode = types.ExitCode(exitErr.ExitCode())
		res.Err = err
	default:
		res.Err = err
	}

	r.logger.Debug("exec finished", "cmd", inv.Name, "exit", res.ExitCode, "error", res.Err)
	return res
}

// String renders the invocation as a shell-like command line for logs.
func (inv Invocation) String() string {
	parts := append([]string{inv.Name}, inv.Args...)
	return strings.Join(parts, " ")
}

// Succeeded reports whether the process started and exited with status 0.
func (res Result) Succeeded() bool {
	return res.Started && res.HasExitCode && res.ExitCode.IsSuccess() && res.Err == nil
}

// Failure describes why a finished invocation did not succeed, or returns nil.
func (res Result) Failure() error {
	switch {
	case res.Succeeded():
		return nil
	case !res.Started:
		return res.Err
	case res.HasExitCode && !res.ExitCode.IsSuccess():
		return &ExitStatusError{Code: res.ExitCode}
	case res.Err != nil:
		return res.Err
	}
	return errors.New("process did not report an exit status")
}
