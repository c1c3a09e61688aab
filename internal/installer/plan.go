// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	// PlannedModule is a module approved for installation.
	PlannedModule struct {
		ReadableName string
		Name         string
	}

	// Plan accumulates what this run will install. Modules are installed in
	// slice order.
	Plan struct {
		Modules          []PlannedModule
		IsReinstallation bool
	}
)

// AddDistroModule appends the package-manager module for a distribution.
func (p *Plan) AddDistroModule(id string) {
	p.Modules = append(p.Modules, PlannedModule{ReadableName: TitleCase(id), Name: id})
}

// AddSelection appends applicable[i] for each index, in the order given.
func (p *Plan) AddSelection(applicable []Module, indices []int) error {
	for _, i := range indices {
		if i < 0 || i >= len(applicable) {
			return fmt.Errorf("selection index %d out of range [0, %d)", i, len(applicable))
		}
		m := applicable[i]
		p.Modules = append(p.Modules, PlannedModule{ReadableName: m.ReadableName, Name: m.Name})
	}
	return nil
}

// Names returns the planned module names in install order.
func (p *Plan) Names() []string {
	names := make([]string, len(p.Modules))
	for i, m := range p.Modules {
		names[i] = m.Name
	}
	return names
}

// TitleCase turns an identifier such as "opensuse-tumbleweed" into
// "Opensuse Tumbleweed".
func TitleCase(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	caser := cases.Title(language.Und)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
