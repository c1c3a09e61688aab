// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

type (
	// Option is a labelled choice in a multi-select prompt.
	Option[T comparable] struct {
		Label string
		Value T
	}

	// MultiChooseOptions configures MultiChoose.
	MultiChooseOptions[T comparable] struct {
		// Title is the prompt displayed above the options.
		Title string
		// Description is shown below the title.
		Description string
		// Options are listed in order.
		Options []Option[T]
		// Config holds common TUI configuration.
		Config Config
	}
)

// runForm is replaced in tests.
var runForm = func(form *huh.Form) error { return form.Run() }

// MultiChoose prompts for any number of options and returns the chosen
// values in option order.
func MultiChoose[T comparable](opts MultiChooseOptions[T]) ([]T, error) {
	var result []T

	huhOpts := make([]huh.Option[T], len(opts.Options))
	for i, o := range opts.Options {
		huhOpts[i] = huh.NewOption(o.Label, o.Value)
	}

	sel := huh.NewMultiSelect[T]().
		Title(opts.Title).
		Options(huhOpts...).
		Value(&result)

	if opts.Description != "" {
		sel = sel.Description(opts.Description)
	}

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(getHuhTheme(opts.Config.Theme)).
		WithAccessible(ShouldUseAccessible(opts.Config))
	if opts.Config.Input != nil {
		form = form.WithInput(opts.Config.Input)
	}
	if opts.Config.Output != nil {
		form = form.WithOutput(opts.Config.Output)
	}

	if err := runForm(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("multi-select prompt: %w", err)
	}

	return orderByOptions(opts.Options, result), nil
}

// orderByOptions returns the members of chosen in the order they appear in
// options, dropping unknown values and duplicates.
func orderByOptions[T comparable](options []Option[T], chosen []T) []T {
	picked := make(map[T]bool, len(chosen))
	for _, v := range chosen {
		picked[v] = true
	}

	ordered := make([]T, 0, len(chosen))
	for _, o := range options {
		if picked[o.Value] {
			ordered = append(ordered, o.Value)
			delete(picked, o.Value)
		}
	}
	return ordered
}
