// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/darling-package-manager/darling-installer/internal/config"
	"github.com/darling-package-manager/darling-installer/internal/installer"
	"github.com/darling-package-manager/darling-installer/internal/runner"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

type (
	// ConfigProvider loads installer configuration.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Resolve(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// App wires the CLI to its services. Every command handler receives an
	// App and reaches the outside world only through it.
	App struct {
		Config      ConfigProvider
		Runner      runner.Runner
		Environment installer.Environment
		stdin       io.Reader
		stdout      io.Writer
		stderr      io.Writer
		getenv      func(string) string
	}

	// Dependencies are the injection points for NewApp. Nil fields get
	// production defaults.
	Dependencies struct {
		Config      ConfigProvider
		Runner      runner.Runner
		Environment installer.Environment
		Stdin       io.Reader
		Stdout      io.Writer
		Stderr      io.Writer
		Getenv      func(string) string
	}
)

// NewApp creates an App from deps.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:      deps.Config,
		Runner:      deps.Runner,
		Environment: deps.Environment,
		stdin:       deps.Stdin,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
		getenv:      deps.Getenv,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	if app.getenv == nil {
		app.getenv = os.Getenv
	}
	return app
}

// newLogger builds the stderr logger; verbose enables debug traces.
func (a *App) newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// runnerFor returns the injected runner or an os/exec runner sharing the
// App's stdio.
func (a *App) runnerFor(logger *log.Logger) runner.Runner {
	if a.Runner != nil {
		return a.Runner
	}
	return runner.New(
		runner.WithStdio(a.stdin, a.stdout, a.stderr),
		runner.WithLogger(logger),
	)
}

func (a *App) environmentFor(logger *log.Logger) installer.Environment {
	if a.Environment != nil {
		return a.Environment
	}
	return &installer.OSEnvironment{Logger: logger}
}

// stdinIsTerminal reports whether the App reads from an interactive terminal.
func (a *App) stdinIsTerminal() bool {
	f, ok := a.stdin.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
