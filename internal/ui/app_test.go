package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catfeed/internal/catapi"
	"catfeed/internal/feed"
)

// stubSearcher returns n images per call (limit if n is 0) or err.
type stubSearcher struct {
	mu    sync.Mutex
	calls []int
	n     int
	err   error
}

func (s *stubSearcher) Search(ctx context.Context, limit int) ([]catapi.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, limit)
	if s.err != nil {
		return nil, s.err
	}
	n := s.n
	if n == 0 {
		n = limit
	}
	out := make([]catapi.Image, n)
	for i := range out {
		out[i] = catapi.Image{ID: fmt.Sprintf("cat%d", i), URL: fmt.Sprintf("https://cdn2.thecatapi.com/images/cat%d.jpg", i)}
	}
	return out, nil
}

func (s *stubSearcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestApp(t *testing.T, s *stubSearcher) (*AppModel, *appModelAdapter) {
	t.Helper()
	ctrl := feed.NewController(s)
	m := NewAppModel(context.Background(), ctrl, 2)
	return m, &appModelAdapter{AppModel: m}
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// fetched returns the CatsFetchedMsgs produced by cmd.
func fetched(cmd tea.Cmd) []CatsFetchedMsg {
	var out []CatsFetchedMsg
	for _, msg := range collect(cmd) {
		if m, ok := msg.(CatsFetchedMsg); ok {
			out = append(out, m)
		}
	}
	return out
}

// settle runs cmd and feeds every fetch result back into the app.
func settle(a *appModelAdapter, cmd tea.Cmd) {
	for _, m := range fetched(cmd) {
		a.Update(m)
	}
}

func typeText(a *appModelAdapter, s string) {
	for _, r := range s {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func clearInput(a *appModelAdapter) {
	a.Input.SetValue("")
}

func TestApp_InitFetchesDefaultCount(t *testing.T) {
	s := &stubSearcher{}
	m, a := newTestApp(t, s)

	assert.Len(t, m.Grid.Items, 4, "placeholders before the first fetch")

	settle(a, a.Init())
	assert.Equal(t, []int{feed.DefaultCount}, s.calls)
	assert.Len(t, m.Grid.Items, feed.DefaultCount)
	assert.False(t, m.Feed.State().Loading)
	assert.Contains(t, a.View(), "5 number of cats has been found!")
}

func TestApp_SubmitValidCount(t *testing.T) {
	s := &stubSearcher{n: 5}
	m, a := newTestApp(t, s)

	typeText(a, "3")
	assert.Equal(t, "3", m.Feed.State().PendingCountText)

	_, cmd := a.Update(keyMsg("enter"))
	assert.True(t, m.Feed.State().Loading)
	settle(a, cmd)

	assert.Equal(t, []int{3}, s.calls)
	assert.Len(t, m.Grid.Items, 3)
	assert.Empty(t, m.Feed.State().ErrorMessage)
}

func TestApp_SubmitOverMax(t *testing.T) {
	s := &stubSearcher{}
	m, a := newTestApp(t, s)
	before := m.Grid.Items

	typeText(a, "15")
	_, cmd := a.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Zero(t, s.callCount())
	assert.Equal(t, "Maximum number of cats is 10", m.Feed.State().ErrorMessage)
	assert.Equal(t, before, m.Grid.Items)
	assert.Contains(t, a.View(), "Maximum number of cats is 10")
}

func TestApp_SubmitNonNumeric(t *testing.T) {
	s := &stubSearcher{}
	m, a := newTestApp(t, s)

	typeText(a, "ab")
	_, cmd := a.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Zero(t, s.callCount())
	assert.Equal(t, feed.MsgNotANumber, m.Feed.State().ErrorMessage)
}

func TestApp_TransportFailureKeepsItems(t *testing.T) {
	s := &stubSearcher{}
	m, a := newTestApp(t, s)
	settle(a, a.Init())
	before := m.Grid.Items

	s.err = errors.New("connection reset")
	typeText(a, "4")
	_, cmd := a.Update(keyMsg("enter"))
	settle(a, cmd)

	assert.Equal(t, feed.MsgFetchFailed, m.Feed.State().ErrorMessage)
	assert.Equal(t, before, m.Grid.Items)
	assert.Contains(t, a.View(), "Failed to fetch cats")
}

func TestApp_ErrorClearedOnNextSubmit(t *testing.T) {
	s := &stubSearcher{}
	m, a := newTestApp(t, s)

	typeText(a, "42")
	a.Update(keyMsg("enter"))
	require.NotEmpty(t, m.Feed.State().ErrorMessage)

	clearInput(a)
	typeText(a, "2")
	_, cmd := a.Update(keyMsg("enter"))
	assert.Empty(t, m.Feed.State().ErrorMessage)
	settle(a, cmd)
	assert.Len(t, m.Grid.Items, 2)
}

func TestApp_OutOfOrderResultsLatestWins(t *testing.T) {
	s := &stubSearcher{}
	m, a := newTestApp(t, s)

	typeText(a, "2")
	_, first := a.Update(keyMsg("enter"))
	clearInput(a)
	typeText(a, "6")
	_, second := a.Update(keyMsg("enter"))

	late := fetched(first)
	settle(a, second)
	require.Len(t, m.Grid.Items, 6)

	for _, msg := range late {
		a.Update(msg)
	}
	assert.Len(t, m.Grid.Items, 6, "result of the superseded request is dropped")
}

func TestApp_QuitCancelsAndIgnoresLateResults(t *testing.T) {
	s := &stubSearcher{}
	m, a := newTestApp(t, s)
	before := m.Grid.Items

	initCmd := a.Init()
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Feed.Closed())
	assert.Error(t, m.ctx.Err(), "root context cancelled")

	settle(a, initCmd)
	assert.Equal(t, before, m.Grid.Items)
}

func TestApp_FocusAndGridKeys(t *testing.T) {
	s := &stubSearcher{n: 6}
	m, a := newTestApp(t, s)
	settle(a, a.Init())

	// In the input, "q" is text, not quit.
	a.Update(keyMsg("q"))
	assert.Equal(t, "q", m.Input.Value())
	assert.False(t, m.Feed.Closed())

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.Focus.Is(FocusGrid))
	assert.True(t, m.Grid.Focused)
	assert.False(t, m.Input.Focused())

	a.Update(keyMsg("l"))
	assert.Equal(t, 1, m.Grid.Selected)
	a.Update(keyMsg("j"))
	assert.Equal(t, 3, m.Grid.Selected)

	a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.True(t, m.Focus.Is(FocusInput))
	assert.False(t, m.Grid.Focused)
}

func TestApp_EscMovesFocusToGrid(t *testing.T) {
	m, a := newTestApp(t, &stubSearcher{})
	a.Update(keyMsg("esc"))
	assert.True(t, m.Focus.Is(FocusGrid))
}

func TestApp_CopySelectedURL(t *testing.T) {
	s := &stubSearcher{n: 3}
	m, a := newTestApp(t, s)
	settle(a, a.Init())

	var copied string
	m.Clipboard = func(s string) error {
		copied = s
		return nil
	}

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a.Update(keyMsg("l"))
	_, cmd := a.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	a.Update(cmd())

	assert.Equal(t, "https://cdn2.thecatapi.com/images/cat1.jpg", copied)
	assert.Contains(t, m.Status, "Copied")

	m.Clipboard = func(string) error { return errors.New("no clipboard") }
	_, cmd = a.Update(keyMsg("y"))
	a.Update(cmd())
	assert.Equal(t, "Could not copy to clipboard", m.Status)
}

func TestApp_RefreshRepeatsLastCount(t *testing.T) {
	s := &stubSearcher{}
	m, a := newTestApp(t, s)

	typeText(a, "3")
	_, cmd := a.Update(keyMsg("enter"))
	settle(a, cmd)

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = a.Update(keyMsg("r"))
	settle(a, cmd)

	assert.Equal(t, []int{3, 3}, s.calls)
	assert.Len(t, m.Grid.Items, 3)
}

func TestApp_QuitFromGrid(t *testing.T) {
	m, a := newTestApp(t, &stubSearcher{})
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Feed.Closed())
}

func TestApp_WindowResize(t *testing.T) {
	m, a := newTestApp(t, &stubSearcher{})
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 116, m.Grid.width)
	assert.Equal(t, 30, m.Grid.height)

	view := a.View()
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 120)
	}
}

func TestApp_DetailsOverlay(t *testing.T) {
	s := &stubSearcher{n: 3}
	m, a := newTestApp(t, s)
	settle(a, a.Init())

	var copied string
	m.Clipboard = func(s string) error {
		copied = s
		return nil
	}

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a.Update(keyMsg("l"))
	a.Update(keyMsg("i"))
	require.Equal(t, 1, m.Overlays.Len())
	view := a.View()
	assert.Contains(t, view, "Cat #2")
	assert.Contains(t, view, "cat1")

	// Movement keys do not leak to the grid, tab does not switch focus.
	a.Update(keyMsg("l"))
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.Grid.Selected)
	assert.True(t, m.Focus.Is(FocusGrid))

	_, cmd := a.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	a.Update(cmd())
	assert.Equal(t, "https://cdn2.thecatapi.com/images/cat1.jpg", copied)

	a.Update(keyMsg("esc"))
	assert.Zero(t, m.Overlays.Len())
	assert.True(t, m.Focus.Is(FocusGrid), "esc only closes the overlay")
}

func TestApp_DetailsClosedByNewResults(t *testing.T) {
	s := &stubSearcher{n: 3}
	m, a := newTestApp(t, s)
	settle(a, a.Init())

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a.Update(keyMsg(" "))
	require.Equal(t, 1, m.Overlays.Len())

	// The refetch is driven by the grid, so close the overlay first.
	a.Update(keyMsg("esc"))
	_, cmd := a.Update(keyMsg("r"))
	a.Update(keyMsg("i"))
	require.Equal(t, 1, m.Overlays.Len())
	settle(a, cmd)
	assert.Zero(t, m.Overlays.Len())
}

func TestApp_HelpToggle(t *testing.T) {
	m, a := newTestApp(t, &stubSearcher{})
	a.Update(keyMsg("?"))
	assert.False(t, m.Help.ShowAll, "? is text in the input")
	assert.Equal(t, "?", m.Input.Value())

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a.Update(keyMsg("?"))
	assert.True(t, m.Help.ShowAll)
	assert.Contains(t, a.View(), "details")
	a.Update(keyMsg("?"))
	assert.False(t, m.Help.ShowAll)
}
