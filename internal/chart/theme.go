package chart

import "charm.land/lipgloss/v2"

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Purple
	Student = lipgloss.Color("#14B8A6") // Teal
	Cohort  = lipgloss.Color("#94A3B8") // Slate
	Good    = lipgloss.Color("#22C55E") // Green
	Bad     = lipgloss.Color("#F43F5E") // Rose
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Header = lipgloss.NewStyle().
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(Cohort).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)
