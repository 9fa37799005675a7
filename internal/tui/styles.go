package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"}
	colorError  = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"}

	// Editor
	titleStyle         = lipgloss.NewStyle().Bold(true).MarginLeft(2).MarginBottom(1)
	focusedHeaderStyle = lipgloss.NewStyle().Foreground(colorAccent).PaddingLeft(2)
	blurredHeaderStyle = lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(2)
	focusedBlockStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	blurredBlockStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	cursorStyle        = lipgloss.NewStyle().Reverse(true)
	promptStyle        = lipgloss.NewStyle().Foreground(colorError).PaddingLeft(2)
	statusStyle        = lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(2)
	helpStyle          = lipgloss.NewStyle().Padding(1, 0, 0, 2)

	// Presenter
	darkForeground = lipgloss.Color("#ffffff")
	darkBackground = lipgloss.Color("#111827")
	controlStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
)

// alignment converts the text alignment setting. Justified text is left aligned.
func alignment(textAlign string) lipgloss.Position {
	switch textAlign {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	}
	return lipgloss.Left
}
