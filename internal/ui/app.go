package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"catfeed/internal/feed"
	"catfeed/internal/telemetry"
)

// chromeRows is the height taken by everything except the grid: frame
// border, title, error, label, input, status and help lines.
const chromeRows = 10

// AppModel is the root model of the feed screen.
type AppModel struct {
	Feed      *feed.Controller
	Grid      *GridView
	Input     textinput.Model
	Focus     *FocusManager
	Keys      KeyMap
	Help      help.Model
	Spinner   spinner.Model
	Overlays  OverlayStack
	Logger    *slog.Logger
	Clipboard func(string) error
	Status    string // transient status line, e.g. after copying a URL

	ctx    context.Context
	cancel context.CancelFunc
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the feed screen. Fetches run under a context derived
// from ctx and are cancelled when the screen quits.
func NewAppModel(ctx context.Context, ctrl *feed.Controller, columns int) *AppModel {
	ctx, cancel := context.WithCancel(ctx)
	keys := DefaultKeyMap()

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d", ctrl.Limits().Max)
	ti.Prompt = "> "
	ti.CharLimit = 4
	ti.Width = 10
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	m := &AppModel{
		Feed:      ctrl,
		Grid:      NewGridView(columns, keys),
		Input:     ti,
		Focus:     NewFocusManager(FocusInput, FocusGrid),
		Keys:      keys,
		Help:      help.New(),
		Spinner:   s,
		Logger:    telemetry.Discard(),
		Clipboard: clipboard.WriteAll,
		ctx:       ctx,
		cancel:    cancel,
	}
	m.Focus.OnChange = m.onFocusChange
	m.Grid.SetItems(ctrl.State().Items)
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model. It issues the initial fetch for the default count.
func (a *appModelAdapter) Init() tea.Cmd {
	req := a.Feed.Start()
	a.Logger.Debug("initial fetch", "count", req.Count, "generation", req.Generation)
	return tea.Batch(textinput.Blink, a.startFetch(req))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Grid.SetSize(msg.Width-4, msg.Height-chromeRows)
		a.Help.Width = msg.Width
		return a, nil

	case CatsFetchedMsg:
		if a.Feed.Resolve(msg.Result) {
			a.Grid.SetItems(a.Feed.State().Items)
			a.Overlays.Clear()
		}
		return a, nil

	case CopiedMsg:
		if msg.Err != nil {
			a.Logger.Warn("clipboard write failed", "err", msg.Err)
			a.Status = "Could not copy to clipboard"
		} else {
			a.Status = "Copied " + msg.URL
		}
		return a, nil

	case spinner.TickMsg:
		if !a.Feed.State().Loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.Spinner, cmd = a.Spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.Input, cmd = a.Input.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.Keys.ForceQuit):
		return a.quit()
	case key.Matches(msg, a.Keys.Focus) && a.Overlays.Len() == 0:
		if msg.String() == "shift+tab" {
			a.Focus.Prev()
		} else {
			a.Focus.Next()
		}
		return nil
	}

	if a.Overlays.Len() > 0 {
		if key.Matches(msg, a.Keys.Copy) {
			return a.copySelected()
		}
		cmd, _ := a.Overlays.HandleKey(msg)
		return cmd
	}

	if a.Focus.Is(FocusInput) {
		if key.Matches(msg, a.Keys.Submit) {
			return a.submit()
		}
		if msg.Type == tea.KeyEsc {
			a.Focus.SetFocus(FocusGrid)
			return nil
		}
		var cmd tea.Cmd
		a.Input, cmd = a.Input.Update(msg)
		a.Feed.SetPending(a.Input.Value())
		return cmd
	}

	switch {
	case key.Matches(msg, a.Keys.Quit):
		return a.quit()
	case key.Matches(msg, a.Keys.Submit):
		return a.submit()
	case key.Matches(msg, a.Keys.Refresh):
		a.Status = ""
		return a.startFetch(a.Feed.Refresh())
	case key.Matches(msg, a.Keys.Copy):
		return a.copySelected()
	case key.Matches(msg, a.Keys.Details):
		if it, ok := a.Grid.SelectedItem(); ok {
			a.Overlays.Push(Overlay{
				View:    NewDetailView(it, a.Grid.Selected, a.Grid.width, a.Keys),
				Dismiss: a.Keys.Close,
			})
		}
		return nil
	case key.Matches(msg, a.Keys.Help):
		a.Help.ShowAll = !a.Help.ShowAll
		return nil
	}
	_, cmd := a.Grid.Update(msg)
	return cmd
}

func (a *appModelAdapter) copySelected() tea.Cmd {
	if it, ok := a.Grid.SelectedItem(); ok {
		return CopyURLCmd(a.Clipboard, it.URL)
	}
	return nil
}

// submit validates the input text and starts a fetch when it is valid.
// Validation failures surface through the feed state's error message.
func (a *appModelAdapter) submit() tea.Cmd {
	a.Status = ""
	req, err := a.Feed.Submit(a.Input.Value())
	if err != nil {
		return nil
	}
	return a.startFetch(*req)
}

func (a *appModelAdapter) startFetch(req feed.Request) tea.Cmd {
	return tea.Batch(FetchCatsCmd(a.ctx, a.Feed, req), a.Spinner.Tick)
}

// quit cancels in-flight fetches and closes the controller before exiting.
func (a *appModelAdapter) quit() tea.Cmd {
	a.cancel()
	a.Feed.Close()
	return tea.Quit
}

func (m *AppModel) onFocusChange(_, to FocusID) {
	m.Grid.Focused = to == FocusGrid
	if to == FocusInput {
		m.Input.Focus()
	} else {
		m.Input.Blur()
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	st := a.Feed.State()

	var b strings.Builder
	title := Styles.Title.Render(st.Title())
	if st.Loading {
		title += " " + a.Spinner.View()
	}
	b.WriteString(title + "\n")
	if top, ok := a.Overlays.Peek(); ok {
		b.WriteString(top.View.View() + "\n")
	} else {
		b.WriteString(a.Grid.View() + "\n")
	}
	if st.ErrorMessage != "" {
		b.WriteString(Styles.Error.Render(st.ErrorMessage) + "\n")
	}
	b.WriteString(Styles.Label.Render("Number of cats") + "\n")
	b.WriteString(a.Input.View() + "\n")
	if a.Status != "" {
		b.WriteString(Styles.Hint.Render(a.Status) + "\n")
	}
	if a.Focus.Is(FocusInput) {
		b.WriteString(a.Help.ShortHelpView(a.Keys.InputHelp()))
	} else {
		b.WriteString(a.Help.View(a.Keys))
	}

	frame := Styles.Frame
	if a.width > 0 {
		frame = frame.Width(a.width - 2)
	}
	return frame.Render(b.String())
}
