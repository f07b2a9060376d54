// Package textutil provides unicode-aware text fitting for card rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in an ellipsis when
// anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= VisualWidth(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// TruncateMiddle keeps both ends of s and elides the middle. Image URLs
// share a long common prefix, so the file name at the end is what tells two
// cards apart.
func TruncateMiddle(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - VisualWidth(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}
	tailWidth := avail / 2
	headWidth := avail - tailWidth

	runes := []rune(s)
	head := make([]rune, 0, headWidth)
	w := 0
	for _, r := range runes {
		rw := runewidth.RuneWidth(r)
		if w+rw > headWidth {
			break
		}
		head = append(head, r)
		w += rw
	}

	tail := make([]rune, 0, tailWidth)
	w = 0
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if w+rw > tailWidth {
			break
		}
		tail = append(tail, runes[i])
		w += rw
	}
	for i, j := 0, len(tail)-1; i < j; i, j = i+1, j-1 {
		tail[i], tail[j] = tail[j], tail[i]
	}
	return string(head) + Ellipsis + string(tail)
}

// PadRight pads s with spaces to exactly width columns, truncating if it is
// already wider.
func PadRight(s string, width int) string {
	if VisualWidth(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}
