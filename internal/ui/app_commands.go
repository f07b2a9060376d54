package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"catfeed/internal/feed"
)

// FetchCatsCmd runs req in a command goroutine and reports a CatsFetchedMsg.
// Cancelling ctx aborts the HTTP request; the controller discards the result
// anyway once the screen is closed.
func FetchCatsCmd(ctx context.Context, ctrl *feed.Controller, req feed.Request) tea.Cmd {
	return func() tea.Msg {
		return CatsFetchedMsg{Result: ctrl.Run(ctx, req)}
	}
}

// CopyURLCmd writes url to the clipboard via copyFn.
func CopyURLCmd(copyFn func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{URL: url, Err: copyFn(url)}
	}
}
