// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/darling-package-manager/darling-installer/internal/cargo"
	"github.com/darling-package-manager/darling-installer/internal/issue"
	"github.com/darling-package-manager/darling-installer/internal/runner"
	"github.com/darling-package-manager/darling-installer/internal/source"

	"github.com/charmbracelet/log"
)

type (
	// Executor performs an approved Plan: fetch, build, expose on PATH,
	// then install each module.
	Executor struct {
		Runner        runner.Runner
		Cloner        source.Cloner
		Env           Environment
		Layout        Layout
		RepositoryURL string
		// Product is the fallback binary name when the manifest cannot be read.
		Product string
		// Strict turns a failing clone or build exit status into an error.
		Strict bool
		Out    io.Writer
		Logger *log.Logger
	}

	// ModuleResult is the outcome of one "module install".
	ModuleResult struct {
		Module PlannedModule
		Err    error
	}

	// InstallReport summarizes a finished execution.
	InstallReport struct {
		Binary  string
		Effect  EnvironmentEffect
		Modules []ModuleResult
	}
)

// Failed returns the modules whose install did not succeed.
func (r *InstallReport) Failed() []ModuleResult {
	var failed []ModuleResult
	for _, m := range r.Modules {
		if m.Err != nil {
			failed = append(failed, m)
		}
	}
	return failed
}

// Execute runs the installation steps in order. Every step before the
// module loop is fatal on failure; module failures are reported and
// collected in the report.
func (e *Executor) Execute(ctx context.Context, plan *Plan) (*InstallReport, error) {
	if plan.IsReinstallation {
		if err := os.RemoveAll(e.Layout.ShareDir); err != nil {
			e.Logger.Debug("could not remove previous installation", "dir", e.Layout.ShareDir, "error", err)
		}
	}

	if err := e.prepareDirs(); err != nil {
		return nil, err
	}

	fmt.Fprintf(e.Out, "\n%s darling from %s\n", headingStyle.Render("Downloading"), e.RepositoryURL)
	if err := e.stepFailed("clone", e.Cloner.Clone(ctx, e.RepositoryURL, e.Layout.WorkDir)); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("clone repository").
			WithResource(e.RepositoryURL).
			WithSuggestion("Check your network connection").
			WithSuggestion("Try the other clone backend (clone_backend in the config file)").
			Wrap(fmt.Errorf("%w: %w", ErrCloneFailed, err)).
			BuildError()
	}

	sourceDir := e.Layout.SourceDir()
	if err := os.Rename(e.Layout.CheckoutDir(e.RepositoryURL), sourceDir); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("move sources").
			WithResource(sourceDir).
			WithSuggestion("Make sure the clone finished and the target directory is empty").
			Wrap(fmt.Errorf("%w: %w", ErrDirectorySetup, err)).
			BuildError()
	}

	binName := e.binaryName(sourceDir)

	fmt.Fprintf(e.Out, "\n%s darling\n", headingStyle.Render("Building"))
	build := e.Runner.Run(ctx, runner.Invocation{
		Name: "cargo",
		Args: []string{"build", "--release"},
		Dir:  sourceDir,
	})
	if err := e.stepFailed("build", build.Failure()); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("build darling").
			WithResource(sourceDir).
			WithSuggestion("Run 'cargo build --release' in the source directory to see the full error").
			WithSuggestion("Update your Rust toolchain with 'rustup update'").
			Wrap(fmt.Errorf("%w: %w", ErrBuildFailed, err)).
			BuildError()
	}

	binDir := cargo.ReleaseBinDir(sourceDir)
	effect, err := NewEnvironmentEffect(binDir, e.Layout.ProfilePath)
	if err == nil {
		err = e.Env.Apply(effect)
	}
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("update shell profile").
			WithResource(e.Layout.ProfilePath).
			WithSuggestion(fmt.Sprintf("Add %s to PATH manually", binDir)).
			Wrap(fmt.Errorf("%w: %w", ErrShellProfile, err)).
			BuildError()
	}

	report := &InstallReport{
		Binary: filepath.Join(binDir, binName),
		Effect: effect,
	}
	for _, m := range plan.Modules {
		report.Modules = append(report.Modules, e.installModule(ctx, report.Binary, m))
	}
	return report, nil
}

func (e *Executor) prepareDirs() error {
	// A checkout left over from an aborted run would make the clone fail.
	stale := e.Layout.CheckoutDir(e.RepositoryURL)
	if err := os.RemoveAll(stale); err != nil {
		e.Logger.Debug("could not remove stale checkout", "dir", stale, "error", err)
	}

	for _, dir := range []string{e.Layout.WorkDir, e.Layout.ShareDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return issue.NewErrorContext().
				WithOperation("create directory").
				WithResource(dir).
				WithSuggestion("Check that your home directory is writable").
				Wrap(fmt.Errorf("%w: %w", ErrDirectorySetup, err)).
				BuildError()
		}
	}
	return nil
}

// stepFailed decides whether a clone or build failure stops the run. A
// process that could not start always does; a failing exit status only
// does in strict mode.
func (e *Executor) stepFailed(step string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, runner.ErrNonZeroExit) && !e.Strict {
		e.Logger.Warn(step+" reported failure; continuing", "error", err)
		return nil
	}
	return err
}

func (e *Executor) binaryName(sourceDir string) string {
	m, err := cargo.ReadManifest(sourceDir)
	if err != nil {
		e.Logger.Warn("could not read Cargo manifest; assuming default binary name", "binary", e.Product, "error", err)
		return e.Product
	}
	if name := m.BinaryName(); name != "" {
		return name
	}
	return e.Product
}

func (e *Executor) installModule(ctx context.Context, binary string, m PlannedModule) ModuleResult {
	fmt.Fprintf(e.Out, "\t%s module for %s... ", headingStyle.Render("Installing"), moduleLabel(m.ReadableName, m.Name))

	res := e.Runner.Run(ctx, runner.Invocation{
		Name: binary,
		Args: []string{"module", "install", m.Name},
	})
	if err := res.Failure(); err != nil {
		fmt.Fprintf(e.Out, "%s %v\n", failStyle.Render("Error:"), err)
		return ModuleResult{Module: m, Err: err}
	}
	fmt.Fprintln(e.Out, okStyle.Render("✔"))
	return ModuleResult{Module: m}
}
