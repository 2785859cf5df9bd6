package tui

import (
	huh "github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2D9CDB")).
			MarginBottom(1)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#27AE60")).
			Bold(true)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EB5757")).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// NewHuhTheme returns the huh form theme used by interactive commands.
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeCharm()

	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#2D9CDB"))
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(lipgloss.Color("#27AE60"))
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.Background(lipgloss.Color("#2D9CDB"))

	return theme
}
