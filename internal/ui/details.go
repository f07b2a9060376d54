package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"catfeed/internal/feed"
)

// DetailView shows one cat with its full, untruncated URL.
type DetailView struct {
	Item  feed.Item
	Index int
	Width int
	keys  KeyMap
}

var _ View = (*DetailView)(nil)

func NewDetailView(item feed.Item, index, width int, keys KeyMap) *DetailView {
	return &DetailView{Item: item, Index: index, Width: width, keys: keys}
}

func (d *DetailView) Init() tea.Cmd { return nil }

// Update is a no-op; the owner handles copy and dismiss.
func (d *DetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	return d, nil
}

func (d *DetailView) View() string {
	id := d.Item.ID
	if id == "" {
		id = "-"
	}
	size := "unknown"
	if d.Item.Width > 0 && d.Item.Height > 0 {
		size = fmt.Sprintf("%d×%d", d.Item.Width, d.Item.Height)
	}

	url := d.Item.URL
	inner := d.Width - Styles.Modal.GetHorizontalFrameSize()
	if inner > 0 {
		url = lipgloss.NewStyle().Width(inner).Render(url)
	}

	var b strings.Builder
	b.WriteString(Styles.ModalTitle.Render(fmt.Sprintf("Cat #%d", d.Index+1)) + "\n\n")
	b.WriteString(Styles.Label.Render("ID    ") + id + "\n")
	b.WriteString(Styles.Label.Render("Size  ") + size + "\n\n")
	b.WriteString(Styles.URL.Render(url) + "\n\n")
	b.WriteString(help.New().ShortHelpView(d.keys.DetailsHelp()))
	return Styles.Modal.Render(b.String())
}
