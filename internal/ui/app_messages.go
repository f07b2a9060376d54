package ui

import (
	"catfeed/internal/feed"
)

// CatsFetchedMsg carries the outcome of one fetch back to the update loop.
// The result's generation decides whether it is applied.
type CatsFetchedMsg struct {
	Result feed.Result
}

// CopiedMsg reports the outcome of copying an image URL to the clipboard.
type CopiedMsg struct {
	URL string
	Err error
}
