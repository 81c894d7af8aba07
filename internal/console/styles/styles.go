// Package styles holds the shared lipgloss palette of the console.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	PrimaryColor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	SubtleColor  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A1A1AA"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	BorderColor  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3F3F46"}
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	Label = lipgloss.NewStyle().Foreground(SubtleColor)

	Help = lipgloss.NewStyle().Foreground(SubtleColor).Italic(true)

	Success = lipgloss.NewStyle().
		Foreground(SuccessColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SuccessColor).
		Padding(0, 1)

	Error = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Padding(0, 1)

	Button = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(PrimaryColor).
		Padding(0, 2)

	ButtonDisabled = Button.Background(SubtleColor)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2)

	PanelFocused = Panel.BorderForeground(PrimaryColor)
)
