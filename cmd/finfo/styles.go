package main

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	kindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor)

	offsetStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	detailStyle = lipgloss.NewStyle()

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

// disableStyles replaces every style with an empty one for --no-color.
func disableStyles() {
	headerStyle = lipgloss.NewStyle()
	kindStyle = lipgloss.NewStyle()
	offsetStyle = lipgloss.NewStyle()
	detailStyle = lipgloss.NewStyle()
	errorStyle = lipgloss.NewStyle()
}
