// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/darling-package-manager/darling-installer/internal/config"
	"github.com/darling-package-manager/darling-installer/internal/installer"
	"github.com/darling-package-manager/darling-installer/internal/issue"
	"github.com/darling-package-manager/darling-installer/internal/runner"
	"github.com/darling-package-manager/darling-installer/internal/source"
	"github.com/darling-package-manager/darling-installer/internal/tui"
	"github.com/darling-package-manager/darling-installer/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	configPath string
	verbose    bool
	strict     bool
	dryRun     bool
	accessible bool
	modules    []string
	osRelease  string
	backend    string
}

// NewRootCommand builds the darling-installer command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "darling-installer",
		Short: "Install the darling package manager",
		Long: TitleStyle.Render("darling-installer") + SubtitleStyle.Render(" - Install the darling package manager") + `

Checks that git and cargo are available, detects your Linux distribution,
lets you pick the package manager modules that apply to this machine, then
builds darling from source into ~/.local/share/darling and adds it to PATH.

` + SubtitleStyle.Render("Examples:") + `
  darling-installer                   Run the interactive installer
  darling-installer --dry-run         Show what would be installed
  darling-installer -m cargo          Preselect the cargo module
  darling-installer config show       Show the effective configuration`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd, app, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/darling-installer/config.cue)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	f := rootCmd.Flags()
	f.BoolVar(&flags.strict, "strict", false, "fail when git or cargo exit with a non-zero status")
	f.BoolVar(&flags.dryRun, "dry-run", false, "print the installation steps without running them")
	f.BoolVar(&flags.accessible, "accessible", false, "use plain line prompts instead of the interactive picker")
	f.StringArrayVarP(&flags.modules, "module", "m", nil, "preselect a module by name (repeatable)")
	f.StringVar(&flags.osRelease, "os-release", "", "read the distribution id from this file")
	f.StringVar(&flags.backend, "clone-backend", "", "how to fetch the sources: git or go-git")

	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// runInstall loads configuration, applies flag overrides and drives one
// installation. Fatal errors are reported here and surface as ExitError.
func runInstall(cmd *cobra.Command, app *App, flags *rootFlags) error {
	ctx := cmd.Context()

	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		logger := app.newLogger(flags.verbose)
		return fail(app.stderr, logger, newServiceError(err, issue.ConfigLoadFailedId, styledErrorLine(err, flags.verbose)))
	}
	applyFlagOverrides(cmd, cfg, flags)

	verbose := cfg.UI.Verbose
	logger := app.newLogger(verbose)

	if err := cfg.CloneBackend.Validate(); err != nil {
		return fail(app.stderr, logger, classifyInstallError(err, verbose))
	}
	if ok, errs := tui.Theme(cfg.UI.Theme).IsValid(); !ok {
		return fail(app.stderr, logger, classifyInstallError(errors.Join(errs...), verbose))
	}

	catalog, err := installer.NewCatalog(cfg.Modules)
	if err != nil {
		return fail(app.stderr, logger, classifyInstallError(err, verbose))
	}

	r := app.runnerFor(logger)
	inst := &installer.Installer{
		Config:   cfg,
		Catalog:  catalog,
		Runner:   r,
		Prompter: app.prompterFor(cfg),
		Cloner:   clonerFor(cfg, r, app.stderr),
		Env:      app.environmentFor(logger),
		Getenv:   app.getenv,
		Out:      app.stdout,
		Logger:   logger,
		Options: installer.Options{
			Modules: flags.modules,
			DryRun:  flags.dryRun,
		},
	}

	summary, err := inst.Run(ctx)
	if err != nil {
		return fail(app.stderr, logger, classifyInstallError(err, verbose))
	}

	logger.Debug("installer finished", "outcome", summary.Outcome, "distro", summary.Distro)
	if summary.Report != nil {
		for _, m := range summary.Report.Failed() {
			logger.Debug("module install failed", "module", m.Module.Name, "error", m.Err)
		}
	}
	return nil
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, flags *rootFlags) {
	changed := cmd.Flags().Changed

	if changed("verbose") {
		cfg.UI.Verbose = flags.verbose
	}
	if changed("strict") {
		cfg.Strict = flags.strict
	}
	if changed("accessible") {
		cfg.UI.Accessible = flags.accessible
	}
	if changed("os-release") {
		cfg.OSReleasePath = flags.osRelease
	}
	if changed("clone-backend") {
		cfg.CloneBackend = config.CloneBackend(flags.backend)
	}
}

// prompterFor picks the huh module picker on an interactive terminal and
// plain line prompts everywhere else.
func (a *App) prompterFor(cfg *config.Config) installer.Prompter {
	accessible := cfg.UI.Accessible || a.getenv("ACCESSIBLE") != ""
	if accessible || !a.stdinIsTerminal() {
		return installer.NewLinePrompter(a.stdin, a.stdout)
	}
	return installer.NewTUIPrompter(a.stdin, a.stdout, tui.Config{
		Theme:  tui.Theme(cfg.UI.Theme),
		Input:  a.stdin,
		Output: a.stdout,
	})
}

// clonerFor selects the clone backend; go-git reports progress on progress.
func clonerFor(cfg *config.Config, r runner.Runner, progress io.Writer) source.Cloner {
	if cfg.CloneBackend == config.CloneBackendGoGit {
		return source.NewGoGit(progress)
	}
	return &source.GitCLI{Runner: r}
}

// fail renders svcErr and converts it into the process exit status.
func fail(stderr io.Writer, logger *log.Logger, svcErr *ServiceError) error {
	renderServiceError(stderr, logger, svcErr)
	return &ExitError{Code: types.ExitFailure, Err: svcErr}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// handleError prints errors that were not already rendered by a handler.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// Main runs the CLI and returns the process exit code.
func Main() int {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return int(exitErr.Code)
		}
		return int(types.ExitFailure)
	}
	return 0
}

// Execute runs the CLI and exits the process. It is called by main.main().
func Execute() {
	os.Exit(Main())
}
