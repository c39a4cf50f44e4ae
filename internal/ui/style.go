package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#667EEA", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
	Warning:   lipgloss.AdaptiveColor{Light: "#C77700", Dark: "#FFB347"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title   lipgloss.Style
	Steps   lipgloss.Style
	Delta   lipgloss.Style
	Label   lipgloss.Style
	Active  lipgloss.Style
	Waiting lipgloss.Style
	Pet     lipgloss.Style
	Card    lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Steps: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Delta: base.
			Foreground(defaultColors.Special),

		Label: base.
			Foreground(defaultColors.Subtle),

		Active: base.
			Foreground(defaultColors.Special),

		Waiting: base.
			Foreground(defaultColors.Subtle),

		Pet: base.
			Foreground(defaultColors.Highlight),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(1, 2),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			Foreground(defaultColors.Error),

		Warning: base.
			Foreground(defaultColors.Warning),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
