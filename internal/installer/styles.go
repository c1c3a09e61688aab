// SPDX-License-Identifier: MPL-2.0

package installer

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#10B981"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	askStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9CA3AF"))
)

// moduleLabel renders "Readable Name (name)".
func moduleLabel(readable, name string) string {
	return nameStyle.Render(readable) + " " + idStyle.Render("("+name+")")
}
