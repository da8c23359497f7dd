package tui

import "github.com/charmbracelet/lipgloss"

// Terrain palette: contour brown for chrome, survey green for the title,
// red clay for anything over a limit.
var (
	contourCol = lipgloss.AdaptiveColor{Light: "#8B5E34", Dark: "#A47148"}
	surveyCol  = lipgloss.AdaptiveColor{Light: "#2F6B3A", Dark: "#7FB77E"}
	mutedCol   = lipgloss.AdaptiveColor{Light: "#7A7368", Dark: "#9A9286"}
	clayCol    = lipgloss.AdaptiveColor{Light: "#A23B2A", Dark: "#E07A5F"}
)

var (
	appStyle   = lipgloss.NewStyle()
	titleStyle = lipgloss.NewStyle().Foreground(surveyCol).Bold(true).Underline(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(contourCol).Padding(0, 1)
	dimStyle   = lipgloss.NewStyle().Foreground(mutedCol).Italic(true)
	failStyle  = lipgloss.NewStyle().Foreground(clayCol).Bold(true)
)
