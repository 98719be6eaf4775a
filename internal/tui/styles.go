package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("42")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	labelStyle        = lipgloss.NewStyle().Width(24)
	focusedLabelStyle = labelStyle.Foreground(accentColor).Bold(true)
	promptStyle       = lipgloss.NewStyle().Foreground(primaryColor)
	hintStyle         = lipgloss.NewStyle().Foreground(mutedColor)
	coercedStyle      = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	errorStyle        = lipgloss.NewStyle().Foreground(errorColor).Bold(true)

	diffAddStyle    = lipgloss.NewStyle().Foreground(successColor)
	diffRemoveStyle = lipgloss.NewStyle().Foreground(errorColor)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginTop(1)
)
