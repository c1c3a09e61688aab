// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"fmt"
	"slices"

	"github.com/darling-package-manager/darling-installer/internal/config"
)

type (
	// Module is an optional integration darling can manage. It applies to
	// this host when any of its Commands resolves on PATH.
	Module struct {
		ReadableName string
		Name         string
		Commands     []string
	}

	// Catalog is the ordered list of known modules.
	Catalog struct {
		modules []Module
	}
)

// builtinModules is the catalog shipped with the installer.
var builtinModules = []Module{
	{ReadableName: "Cargo", Name: "cargo", Commands: []string{"cargo"}},
	{ReadableName: "Visual Studio Code", Name: "vscode", Commands: []string{"code", "codium"}},
}

// NewCatalog returns the built-in catalog followed by extra entries.
// Extra entries reusing a built-in name are rejected.
func NewCatalog(extra []config.ModuleEntry) (*Catalog, error) {
	modules := make([]Module, 0, len(builtinModules)+len(extra))
	for _, m := range builtinModules {
		modules = append(modules, m.clone())
	}

	for _, e := range extra {
		if slices.ContainsFunc(modules, func(m Module) bool { return m.Name == e.Name }) {
			return nil, fmt.Errorf("%w: module %q duplicates a built-in module", config.ErrInvalidModuleEntry, e.Name)
		}
		readable := e.ReadableName
		if readable == "" {
			readable = TitleCase(e.Name)
		}
		modules = append(modules, Module{
			ReadableName: readable,
			Name:         e.Name,
			Commands:     slices.Clone(e.Commands),
		})
	}

	return &Catalog{modules: modules}, nil
}

// Modules returns a copy of the catalog in declaration order.
func (c *Catalog) Modules() []Module {
	out := make([]Module, len(c.modules))
	for i, m := range c.modules {
		out[i] = m.clone()
	}
	return out
}

// Lookup finds a module by name.
func (c *Catalog) Lookup(name string) (Module, bool) {
	for _, m := range c.modules {
		if m.Name == name {
			return m.clone(), true
		}
	}
	return Module{}, false
}

// Names returns the module names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.modules))
	for i, m := range c.modules {
		names[i] = m.Name
	}
	return names
}

// Applicable returns, in declaration order, the modules with at least one
// command that lookPath resolves.
func (c *Catalog) Applicable(lookPath func(string) (string, error)) []Module {
	var out []Module
	for _, m := range c.modules {
		if m.appliesWith(lookPath) {
			out = append(out, m.clone())
		}
	}
	return out
}

func (m Module) appliesWith(lookPath func(string) (string, error)) bool {
	for _, cmd := range m.Commands {
		if _, err := lookPath(cmd); err == nil {
			return true
		}
	}
	return false
}

func (m Module) clone() Module {
	m.Commands = slices.Clone(m.Commands)
	return m
}
