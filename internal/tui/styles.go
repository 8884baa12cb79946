package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	muted  = lipgloss.AdaptiveColor{Light: "#6C6F85", Dark: "#A6ADC8"}

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Bold(true)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1).
			Width(32)

	focusedFieldStyle = fieldStyle.BorderForeground(accent)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#40A02B")).
			MarginTop(1)

	rateStyle = lipgloss.NewStyle().Foreground(muted)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D20F39")).
			MarginTop(1)

	textStyle = lipgloss.NewStyle().Width(64)
)
