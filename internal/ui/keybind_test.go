package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeyEsc.String() returns "esc", KeyEnter returns "enter", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestDefaultKeyMap_Matches(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
		name    string
	}{
		{keyMsg("enter"), k.Submit, "submit"},
		{keyMsg("tab"), k.Focus, "focus"},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, k.Focus, "focus back"},
		{keyMsg("k"), k.Up, "up k"},
		{keyMsg("up"), k.Up, "up arrow"},
		{keyMsg("j"), k.Down, "down j"},
		{keyMsg("down"), k.Down, "down arrow"},
		{keyMsg("h"), k.Left, "left h"},
		{keyMsg("left"), k.Left, "left arrow"},
		{keyMsg("l"), k.Right, "right l"},
		{keyMsg("right"), k.Right, "right arrow"},
		{keyMsg("y"), k.Copy, "copy"},
		{keyMsg("r"), k.Refresh, "refresh"},
		{keyMsg("i"), k.Details, "details"},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, k.Details, "details space"},
		{keyMsg("esc"), k.Close, "close"},
		{keyMsg("?"), k.Help, "help"},
		{keyMsg("q"), k.Quit, "quit"},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, k.ForceQuit, "force quit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding), "%q should match", tt.msg.String())
		})
	}
}

func TestDefaultKeyMap_EscIsNotQuit(t *testing.T) {
	k := DefaultKeyMap()
	assert.False(t, key.Matches(keyMsg("esc"), k.Quit))
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()
	assert.NotEmpty(t, k.ShortHelp())
	assert.Len(t, k.FullHelp(), 3)
	for _, b := range k.InputHelp() {
		// Nothing in the input help may be a printable key the field needs.
		for _, ks := range b.Keys() {
			assert.NotEqual(t, 1, len([]rune(ks)), "input help binds printable key %q", ks)
		}
	}
}
