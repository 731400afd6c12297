package cli

import "github.com/charmbracelet/lipgloss"

var (
	PrimaryColor = lipgloss.Color("#4A90E2")
	SuccessColor = lipgloss.Color("#2ECC71")
	WarningColor = lipgloss.Color("#F5A623")
	ErrorColor   = lipgloss.Color("#E74C3C")
	SubtleColor  = lipgloss.Color("#666666")

	// TitleStyle is used for the profile name and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle frames the headline figures of the summary.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)
)
