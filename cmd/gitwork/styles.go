package main

import "github.com/charmbracelet/lipgloss"

// Shared styles for command output.
var (
	// mutedStyle is used for secondary information (value sources).
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// accentStyle is used for trailer keys and other highlights.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
)

// colorize renders s with style unless color output is disabled via the
// no_color setting (or the NO_COLOR environment variable, which the
// settings layer folds into it).
func colorize(noColor bool, style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}
