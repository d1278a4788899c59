package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle cyan reads well on light and dark terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle is dimmed so descriptions stay behind commands
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	AnswerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	// BadgeStyle marks answers that used the web or the cache
	BadgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Italic(true)
)
