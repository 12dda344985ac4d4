// Package view renders detail page snapshots for the terminal.
package view

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#101F38")
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#6b7280")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Styles groups the lipgloss styles used by Render.
type Styles struct {
	Title     lipgloss.Style
	Crumb     lipgloss.Style
	Label     lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Link      lipgloss.Style
	ActiveTab lipgloss.Style
	Tab       lipgloss.Style
	Header    lipgloss.Style
	Panel     lipgloss.Style
	Success   lipgloss.Style
	Failed    lipgloss.Style
	Aborted   lipgloss.Style
	Error     lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Crumb:     lipgloss.NewStyle().Foreground(Info),
		Label:     lipgloss.NewStyle().Bold(true),
		Body:      lipgloss.NewStyle(),
		Muted:     lipgloss.NewStyle().Foreground(Muted),
		Link:      lipgloss.NewStyle().Foreground(Info).Underline(true),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(Accent).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(Muted).Padding(0, 1),
		Header:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(0, 1),
		Success:   lipgloss.NewStyle().Foreground(Accent),
		Failed:    lipgloss.NewStyle().Foreground(Destructive),
		Aborted:   lipgloss.NewStyle().Foreground(Warning),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(Destructive),
	}
}
