// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"os/exec"
	"slices"
)

type (
	// Recorder is an in-memory Runner for tests. It records every invocation
	// and answers with canned results keyed by executable name.
	Recorder struct {
		// Paths maps executable names that resolve on the fake search path
		// to their resolved location.
		Paths map[string]string
		// Results maps an executable name (or base name for absolute paths)
		// to the Result returned by Run and Output. Unlisted names succeed.
		Results map[string]Result
		// Hooks run before a result is returned, keyed like Results. They let
		// tests create the files a real process would have produced.
		Hooks map[string]func(inv Invocation)
		// Invocations lists every Run and Output call in order.
		Invocations []Invocation
	}
)

// NewRecorder creates a Recorder where only the given names resolve.
func NewRecorder(onPath ...string) *Recorder {
	r := &Recorder{
		Paths:   make(map[string]string, len(onPath)),
		Results: make(map[string]Result),
		Hooks:   make(map[string]func(Invocation)),
	}
	for _, name := range onPath {
		r.Paths[name] = "/usr/bin/" + name
	}
	return r
}

// LookPath resolves name if it was registered in Paths.
func (r *Recorder) LookPath(name string) (string, error) {
	if p, ok := r.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Run records inv and returns its canned Result.
func (r *Recorder) Run(ctx context.Context, inv Invocation) Result {
	return r.answer(ctx, inv)
}

// Output records inv and returns its canned Result.
func (r *Recorder) Output(ctx context.Context, inv Invocation) Result {
	return r.answer(ctx, inv)
}

// Names returns the executable of each recorded invocation, in order.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.Invocations))
	for _, inv := range r.Invocations {
		names = append(names, inv.Name)
	}
	return names
}

// Called reports whether an invocation of name with args was recorded.
func (r *Recorder) Called(name string, args ...string) bool {
	for _, inv := range r.Invocations {
		if inv.Name == name && slices.Equal(inv.Args, args) {
			return true
		}
	}
	return false
}

func (r *Recorder) answer(ctx context.Context, inv Invocation) Result {
	r.Invocations = append(r.Invocations, inv)
	if err := ctx.Err(); err != nil {
		return Result{Err: errors.Join(ErrNotStarted, err)}
	}

	key := recorderKey(inv.Name)
	if hook, ok := r.Hooks[key]; ok {
		hook(inv)
	}
	if res, ok := r.Results[key]; ok {
		return res
	}
	return Result{Started: true, HasExitCode: true}
}

func recorderKey(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[i+1:]
		}
	}
	return name
}
