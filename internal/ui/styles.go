package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"      // Cyan/green - titles, spinner
	ColorHighlight = "205"     // Magenta - selected card, focused input
	ColorDanger    = "196"     // Red - error label
	ColorMuted     = "241"     // Gray - hints, unfocused borders
	ColorText      = "252"     // Light gray - normal text
	ColorCat       = "#fb923c" // Orange - card headers
)

// Styles contains shared style definitions for the feed screen.
var Styles = struct {
	Title        lipgloss.Style
	Frame        lipgloss.Style // Outer box around the whole screen
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardHeader   lipgloss.Style
	URL          lipgloss.Style
	Error        lipgloss.Style
	Label        lipgloss.Style
	Hint         lipgloss.Style
	Empty        lipgloss.Style
	Status       lipgloss.Style
	Modal        lipgloss.Style // Details overlay box
	ModalTitle   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	CardSelected: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	CardHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorCat)),
	URL: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	ModalTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorCat)),
}
