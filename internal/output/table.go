// Package output renders feed results for non-interactive commands.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"catfeed/internal/feed"
)

// ImageHeaders are the columns of the image table.
var ImageHeaders = []string{"#", "ID", "URL", "SIZE"}

// newTable creates a borderless, left-aligned table.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

// ImageRows formats items as table rows.
func ImageRows(items []feed.Item) [][]string {
	rows := make([][]string, len(items))
	for i, it := range items {
		id := it.ID
		if id == "" {
			id = "-"
		}
		size := "-"
		if it.Width > 0 && it.Height > 0 {
			size = fmt.Sprintf("%dx%d", it.Width, it.Height)
		}
		rows[i] = []string{fmt.Sprint(i + 1), id, it.URL, size}
	}
	return rows
}

// WriteTable renders items as a table.
func WriteTable(w io.Writer, items []feed.Item) error {
	t := newTable(w)
	t.Header(ImageHeaders)
	if err := t.Bulk(ImageRows(items)); err != nil {
		return fmt.Errorf("building table: %w", err)
	}
	if err := t.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}

// jsonImage is the --json shape of an item.
type jsonImage struct {
	ID     string `json:"id,omitempty"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// WriteJSON renders items as an indented JSON array.
func WriteJSON(w io.Writer, items []feed.Item) error {
	out := make([]jsonImage, len(items))
	for i, it := range items {
		out[i] = jsonImage{ID: it.ID, URL: it.URL, Width: it.Width, Height: it.Height}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
