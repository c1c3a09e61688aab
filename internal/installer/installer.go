// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/darling-package-manager/darling-installer/internal/config"
	"github.com/darling-package-manager/darling-installer/internal/issue"
	"github.com/darling-package-manager/darling-installer/internal/runner"
	"github.com/darling-package-manager/darling-installer/internal/source"

	"github.com/charmbracelet/log"
)

const (
	// OutcomeInstalled means darling was built and the plan executed.
	OutcomeInstalled Outcome = iota
	// OutcomeNoDistro means no distribution id was found; nothing was installed.
	OutcomeNoDistro
	// OutcomeDeclined means the user declined the final confirmation.
	OutcomeDeclined
	// OutcomeDryRun means the plan was printed instead of executed.
	OutcomeDryRun
)

type (
	// Outcome is how a successful Run ended.
	Outcome int

	// Options adjust a single run.
	Options struct {
		// Modules preselects catalog modules by name, skipping the picker.
		Modules []string
		// DryRun prints the steps instead of running them.
		DryRun bool
	}

	// Summary describes a run that ended without a fatal error.
	Summary struct {
		Outcome Outcome
		Distro  string
		Plan    *Plan
		Report  *InstallReport
	}

	// Installer drives the interactive installation. Decisions live here;
	// asking the user goes through Prompter and touching the environment
	// goes through Env.
	Installer struct {
		Config   *config.Config
		Catalog  *Catalog
		Runner   runner.Runner
		Prompter Prompter
		Cloner   source.Cloner
		Env      Environment
		Getenv   func(string) string
		Out      io.Writer
		Logger   *log.Logger
		Options  Options
	}
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInstalled:
		return "installed"
	case OutcomeNoDistro:
		return "no-distro"
	case OutcomeDeclined:
		return "declined"
	case OutcomeDryRun:
		return "dry-run"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Run walks through the installation. A returned error is fatal for the
// process; every graceful ending is reported through Summary.Outcome.
func (i *Installer) Run(ctx context.Context) (*Summary, error) {
	product := i.Config.Product
	plan := &Plan{}

	if err := i.checkPreselected(); err != nil {
		return nil, err
	}

	if _, err := i.Runner.LookPath(product); err == nil {
		ok, err := i.Prompter.Confirm(fmt.Sprintf("It looks like %s is already %s. Would you like to %s?",
			nameStyle.Render(product), okStyle.Render("installed"), askStyle.Render("reinstall it")))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, cancelled("Cancelling installation.")
		}
		plan.IsReinstallation = true
	}

	fmt.Fprintf(i.Out, "\n%s requirements...\n", headingStyle.Render("Checking"))
	checker := &RequirementChecker{LookPath: i.Runner.LookPath, Out: i.Out}
	if err := checker.CheckAll(i.Config.Requirements); err != nil {
		return nil, err
	}
	fmt.Fprintf(i.Out, "%s All requirements are installed.\n\n", okStyle.Render("Good news!"))

	distro, ok, err := NewDistroDetector(i.Config.OSReleasePath).Detect()
	if err != nil {
		return nil, err
	}
	if !ok {
		i.Logger.Debug("no distribution id found", "path", i.Config.OSReleasePath)
		return &Summary{Outcome: OutcomeNoDistro, Plan: plan}, nil
	}

	if err := i.offerDistroModule(ctx, distro, plan); err != nil {
		return nil, err
	}

	if err := i.selectModules(plan); err != nil {
		return nil, err
	}

	fmt.Fprintf(i.Out, "\n%s %s with modules:\n", headingStyle.Render("Installing"), TitleCase(product))
	for _, m := range plan.Modules {
		fmt.Fprintf(i.Out, "\t%s\n", moduleLabel(m.ReadableName, m.Name))
	}

	layout, err := NewLayout(i.Getenv("HOME"), i.Config)
	if err != nil {
		return nil, err
	}

	if i.Options.DryRun {
		i.printDryRun(layout, plan)
		return &Summary{Outcome: OutcomeDryRun, Distro: distro, Plan: plan}, nil
	}

	proceed, err := i.Prompter.Confirm("Proceed?")
	if err != nil {
		return nil, err
	}
	if !proceed {
		return &Summary{Outcome: OutcomeDeclined, Distro: distro, Plan: plan}, nil
	}

	exec := &Executor{
		Runner:        i.Runner,
		Cloner:        i.Cloner,
		Env:           i.Env,
		Layout:        layout,
		RepositoryURL: i.Config.RepositoryURL,
		Product:       product,
		Strict:        i.Config.Strict,
		Out:           i.Out,
		Logger:        i.Logger,
	}
	report, err := exec.Execute(ctx, plan)
	if err != nil {
		return nil, err
	}

	if failed := report.Failed(); len(failed) > 0 {
		i.Logger.Warn("some modules failed to install", "count", len(failed))
	}

	fmt.Fprintln(i.Out)
	fmt.Fprintln(i.Out, okStyle.Render("Installation complete!"))
	fmt.Fprintf(i.Out, "To use %s, %s\n", product, okStyle.Render("open a new shell."))
	fmt.Fprintf(i.Out, "To use %s in your current shell, run %s\n", product, nameStyle.Render(". "+layout.DisplayProfile()))

	return &Summary{Outcome: OutcomeInstalled, Distro: distro, Plan: plan, Report: report}, nil
}

func (i *Installer) offerDistroModule(ctx context.Context, distro string, plan *Plan) error {
	product := i.Config.Product
	fmt.Fprintf(i.Out, "It looks like you're on %s. ", nameStyle.Render(distro+" Linux"))

	registry := &Registry{Runner: i.Runner, Product: product}
	found, err := registry.HasImplementation(ctx, distro)
	if err != nil {
		return err
	}

	if !found {
		ok, err := i.Prompter.Confirm(fmt.Sprintf("Currently, %s.\nDo you wish to continue the installation?",
			failStyle.Render(fmt.Sprintf("there is no locatable %s implementation for %s Linux's package manager", product, distro))))
		if err != nil {
			return err
		}
		if !ok {
			return cancelled(fmt.Sprintf("Cancelling %s installation.", product))
		}
		return nil
	}

	ok, err := i.Prompter.Confirm(fmt.Sprintf("%s.\nDo you wish to install this module?",
		okStyle.Render(fmt.Sprintf("There exists an implementation of %s for %s Linux's package manager", product, distro))))
	if err != nil {
		return err
	}
	if ok {
		plan.AddDistroModule(distro)
	}
	return nil
}

func (i *Installer) selectModules(plan *Plan) error {
	fmt.Fprintf(i.Out, "\n%s for applicable modules...\n", headingStyle.Render("Scanning"))
	applicable := i.Catalog.Applicable(i.Runner.LookPath)
	fmt.Fprintln(i.Out, applicableSummary(len(applicable)))

	if len(i.Options.Modules) > 0 {
		indices, err := preselectedIndices(applicable, i.Options.Modules)
		if err != nil {
			return err
		}
		return plan.AddSelection(applicable, indices)
	}

	if len(applicable) == 0 {
		return nil
	}

	fmt.Fprintln(i.Out, "Please select the modules you'd like to install (you can change this at any time):")
	indices, err := i.Prompter.SelectModules(applicable)
	if err != nil {
		return err
	}
	return plan.AddSelection(applicable, indices)
}

// checkPreselected rejects --module names the catalog does not know.
func (i *Installer) checkPreselected() error {
	for _, name := range i.Options.Modules {
		if _, ok := i.Catalog.Lookup(name); ok {
			continue
		}
		ctx := issue.NewErrorContext().
			WithOperation("select module").
			WithResource(name)
		if s, ok := suggestName(name, i.Catalog.Names()); ok {
			ctx = ctx.WithSuggestion(fmt.Sprintf("Did you mean %q?", s))
		}
		return ctx.
			WithSuggestion("Known modules: " + strings.Join(i.Catalog.Names(), ", ")).
			Wrap(fmt.Errorf("%w: %s", ErrUnknownModule, name)).
			BuildError()
	}
	return nil
}

func (i *Installer) printDryRun(layout Layout, plan *Plan) {
	fmt.Fprintf(i.Out, "\n%s no changes will be made. The installation would:\n", askStyle.Render("Dry run:"))
	var steps []string
	if plan.IsReinstallation {
		steps = append(steps, "remove "+layout.ShareDir)
	}
	steps = append(steps,
		fmt.Sprintf("clone %s into %s", i.Config.RepositoryURL, layout.WorkDir),
		fmt.Sprintf("move %s to %s", layout.CheckoutDir(i.Config.RepositoryURL), layout.SourceDir()),
		fmt.Sprintf("run cargo build --release in %s", layout.SourceDir()),
		fmt.Sprintf("add %s/target/release to PATH in %s", layout.SourceDir(), layout.DisplayProfile()),
	)
	for _, m := range plan.Modules {
		steps = append(steps, fmt.Sprintf("run %s module install %s", i.Config.Product, m.Name))
	}
	for n, s := range steps {
		fmt.Fprintf(i.Out, "\t%d. %s\n", n+1, s)
	}
}

// preselectedIndices maps names to indices into applicable, keeping the
// order the names were given in.
func preselectedIndices(applicable []Module, names []string) ([]int, error) {
	indices := make([]int, 0, len(names))
	for _, name := range names {
		idx := -1
		for j, m := range applicable {
			if m.Name == name {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, issue.NewErrorContext().
				WithOperation("select module").
				WithResource(name).
				WithSuggestion("Install one of the tools the module integrates with first").
				Wrap(fmt.Errorf("%w: %s", ErrModuleNotApplicable, name)).
				BuildError()
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

func applicableSummary(n int) string {
	verb, noun := "are", "modules"
	if n == 1 {
		verb, noun = "is", "module"
	}
	return fmt.Sprintf("Based on applications you have installed, there %s %s %s you may find useful.",
		verb, nameStyle.Render(fmt.Sprint(n)), noun)
}

func cancelled(msg string) error {
	return issue.NewErrorContext().
		WithOperation("confirm installation").
		WithSuggestion("Run the installer again and answer 'y' to continue").
		Wrap(fmt.Errorf("%w: %s", ErrCancelled, msg)).
		BuildError()
}
