package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0).
			Foreground(lipgloss.Color("15"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245"))

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("15")).
			Underline(true).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	footerHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	footerStyle        = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				MarginTop(1).
				MarginRight(4)

	lightboxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("15")).
			Padding(1, 2)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
