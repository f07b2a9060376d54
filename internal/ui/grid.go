package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"catfeed/internal/feed"
	"catfeed/internal/ui/textutil"
)

const (
	minCardWidth  = 24 // content columns, excluding border and padding
	cardChrome    = 4  // border (2) + horizontal padding (2)
	cardGap       = 1
	defaultWidth  = 80
	defaultHeight = 20
)

// GridView is a scrollable grid of image cards with a selection cursor.
type GridView struct {
	Items    []feed.Item
	Selected int
	Columns  int // preferred column count; fewer are used on narrow terminals
	Focused  bool

	keys     KeyMap
	viewport viewport.Model
	width    int
	height   int
}

// Ensure GridView implements View.
var _ View = (*GridView)(nil)

// NewGridView creates an empty grid.
func NewGridView(columns int, keys KeyMap) *GridView {
	if columns < 1 {
		columns = 1
	}
	return &GridView{
		Columns:  columns,
		keys:     keys,
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// SetItems replaces the grid contents, keeping the selection in range.
func (g *GridView) SetItems(items []feed.Item) {
	g.Items = items
	if g.Selected >= len(items) {
		g.Selected = max(len(items)-1, 0)
	}
}

// SetSize sets the outer dimensions available to the grid.
func (g *GridView) SetSize(width, height int) {
	g.width = max(width, minCardWidth+cardChrome)
	g.height = max(height, 1)
	g.viewport.Width = g.width
	g.viewport.Height = g.height
}

// SelectedItem returns the item under the cursor.
func (g *GridView) SelectedItem() (feed.Item, bool) {
	if g.Selected < 0 || g.Selected >= len(g.Items) {
		return feed.Item{}, false
	}
	return g.Items[g.Selected], true
}

// EffectiveColumns is the column count that fits the current width.
func (g *GridView) EffectiveColumns() int {
	fit := (g.width + cardGap) / (minCardWidth + cardChrome + cardGap)
	return max(1, min(g.Columns, fit))
}

// Init implements View.
func (g *GridView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (g *GridView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Items) == 0 {
		return g, nil
	}
	cols := g.EffectiveColumns()
	last := len(g.Items) - 1
	switch {
	case key.Matches(km, g.keys.Left):
		if g.Selected > 0 {
			g.Selected--
		}
	case key.Matches(km, g.keys.Right):
		if g.Selected < last {
			g.Selected++
		}
	case key.Matches(km, g.keys.Up):
		if g.Selected-cols >= 0 {
			g.Selected -= cols
		}
	case key.Matches(km, g.keys.Down):
		g.Selected = min(g.Selected+cols, last)
	}
	return g, nil
}

// View implements View.
func (g *GridView) View() string {
	if len(g.Items) == 0 {
		return Styles.Empty.Render("No cats yet. Enter a number and press enter.")
	}

	cols := g.EffectiveColumns()
	contentWidth := max(minCardWidth, (g.width-cardGap*(cols-1))/cols-cardChrome)

	var rows []string
	rowHeight := 0
	for start := 0; start < len(g.Items); start += cols {
		end := min(start+cols, len(g.Items))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, g.renderCard(i, contentWidth))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		rowHeight = max(rowHeight, lipgloss.Height(row))
		rows = append(rows, row)
	}

	g.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, rows...))
	g.scrollToSelection(rowHeight, cols)
	return g.viewport.View()
}

// renderCard draws item i as a bordered box of the given content width.
func (g *GridView) renderCard(i, width int) string {
	it := g.Items[i]

	header := fmt.Sprintf("#%d", i+1)
	if it.ID != "" {
		header += "  " + it.ID
	}
	size := ""
	if it.Width > 0 && it.Height > 0 {
		size = fmt.Sprintf("%d×%d", it.Width, it.Height)
	}

	body := strings.Join([]string{
		Styles.CardHeader.Render(textutil.PadRight(header, width)),
		Styles.URL.Render(textutil.PadRight(textutil.TruncateMiddle(it.URL, width), width)),
		Styles.Hint.Render(textutil.PadRight(size, width)),
	}, "\n")

	style := Styles.Card
	if g.Focused && i == g.Selected {
		style = Styles.CardSelected
	}
	return style.Render(body)
}

// scrollToSelection keeps the selected card's row inside the viewport.
func (g *GridView) scrollToSelection(rowHeight, cols int) {
	if rowHeight == 0 {
		return
	}
	top := (g.Selected / cols) * rowHeight
	bottom := top + rowHeight
	switch {
	case top < g.viewport.YOffset:
		g.viewport.SetYOffset(top)
	case bottom > g.viewport.YOffset+g.viewport.Height:
		g.viewport.SetYOffset(bottom - g.viewport.Height)
	}
}
