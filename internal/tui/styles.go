package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	Container lipgloss.Style
	Divider   lipgloss.Style

	Title    lipgloss.Style
	Cycle    lipgloss.Style
	Work     lipgloss.Style
	Break    lipgloss.Style
	Paused   lipgloss.Style
	LateTag  lipgloss.Style
	Timer    lipgloss.Style
	GaugeLbl lipgloss.Style
	Footer   lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")),

	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Cycle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")),

	Work: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	Break: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")),

	Paused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")),

	LateTag: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Timer: lipgloss.NewStyle().
		Bold(true),

	GaugeLbl: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),
}
