// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/darling-package-manager/darling-installer/internal/tui"
)

const defaultSelectAttempts = 3

type (
	// Prompter asks the questions the installer flow needs answered.
	Prompter interface {
		// Confirm prints question and waits for a yes/no answer.
		Confirm(question string) (bool, error)
		// SelectModules returns indices into applicable chosen by the user.
		SelectModules(applicable []Module) ([]int, error)
	}

	// LinePrompter asks over plain lines of text. Selections keep the order
	// the numbers were typed in.
	LinePrompter struct {
		in          *bufio.Reader
		out         io.Writer
		maxAttempts int
	}

	// TUIPrompter selects modules with a huh multi-select; confirmations
	// stay line based.
	TUIPrompter struct {
		*LinePrompter
		Config tui.Config
	}
)

// NewLinePrompter creates a LinePrompter reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, maxAttempts: defaultSelectAttempts}
}

// NewTUIPrompter creates a prompter that draws the module picker with huh.
func NewTUIPrompter(in io.Reader, out io.Writer, cfg tui.Config) *TUIPrompter {
	return &TUIPrompter{LinePrompter: NewLinePrompter(in, out), Config: cfg}
}

// Confirm prints question followed by "(Y/n): " and reads the answer.
func (p *LinePrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (Y/n): ", question)
	return UserConfirmed(p.in)
}

// SelectModules lists applicable modules with 1-based numbers and reads a
// line of numbers separated by spaces or commas. An empty line selects
// nothing. Invalid input is re-prompted a few times before giving up.
func (p *LinePrompter) SelectModules(applicable []Module) ([]int, error) {
	for i, m := range applicable {
		fmt.Fprintf(p.out, "\t%d) %s\n", i+1, moduleLabel(m.ReadableName, m.Name))
	}

	var lastErr error
	for range p.maxAttempts {
		fmt.Fprint(p.out, "Enter the numbers of the modules to install, separated by spaces (empty for none): ")

		line, err := p.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("read selection: %w", err)
			}
			if line == "" {
				return nil, ErrNoInput
			}
		}

		indices, parseErr := parseSelection(line, len(applicable))
		if parseErr == nil {
			return indices, nil
		}
		lastErr = parseErr
		fmt.Fprintf(p.out, "%s %v\n", failStyle.Render("Invalid selection:"), parseErr)
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return nil, fmt.Errorf("no valid selection after %d attempts: %w", p.maxAttempts, lastErr)
}

// SelectModules shows a multi-select over applicable and returns the
// chosen indices in list order.
func (p *TUIPrompter) SelectModules(applicable []Module) ([]int, error) {
	options := make([]tui.Option[int], len(applicable))
	for i, m := range applicable {
		options[i] = tui.Option[int]{Label: fmt.Sprintf("%s (%s)", m.ReadableName, m.Name), Value: i}
	}

	chosen, err := tui.MultiChoose(tui.MultiChooseOptions[int]{
		Title:       "Modules",
		Description: "space to toggle, enter to confirm",
		Options:     options,
		Config:      p.Config,
	})
	if err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			return nil, fmt.Errorf("%w: module selection aborted", ErrCancelled)
		}
		return nil, err
	}
	return chosen, nil
}

// parseSelection turns "2 1" or "2,1" into zero-based indices [1 0].
func parseSelection(line string, n int) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	indices := make([]int, 0, len(fields))
	seen := make(map[int]bool, len(fields))
	for _, f := range fields {
		num, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		if num < 1 || num > n {
			return nil, fmt.Errorf("%d is not between 1 and %d", num, n)
		}
		if seen[num] {
			return nil, fmt.Errorf("%d was entered twice", num)
		}
		seen[num] = true
		indices = append(indices, num-1)
	}
	return indices, nil
}
