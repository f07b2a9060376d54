package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a region of the screen with its own Elm-style update cycle.
// Update returns the View so a region can swap itself out.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
