// Package ui renders the cat feed screen with Bubble Tea.
//
// The screen is one AppModel holding:
//   - GridView: scrollable grid of image cards with a selection cursor
//   - a textinput for the requested count
//   - FocusManager: tab rotation between the input and the grid
//   - OverlayStack: the details overlay for the selected card
//   - KeyMap: bindings, also rendered by bubbles/help
//
// All feed state lives in feed.Controller. Fetches run as tea.Cmds and come
// back as CatsFetchedMsg; the controller drops results from superseded
// requests and anything arriving after the screen quits.
package ui
