// Package feed holds the cat feed state and the transitions that drive it.
//
// State is a plain value. Submit, Begin and Resolve return a new State
// rather than mutating in place, so the screen owns exactly one copy and
// every transition can be exercised without a UI or a network.
package feed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// User-visible messages.
const (
	MsgFetchFailed = "Failed to fetch cats"
	MsgNotANumber  = "Count must be a whole number"
	MsgBelowMin    = "Minimum number of cats is 1"
)

// Default bounds for the requested count.
const (
	DefaultCount = 5
	DefaultMax   = 10
	MinCount     = 1
)

// Item is a single image shown in the grid.
type Item struct {
	ID     string
	URL    string
	Width  int
	Height int
}

// Limits bounds the counts a user may request.
type Limits struct {
	Default int
	Max     int
}

// DefaultLimits returns the stock limits (5 on start, at most 10).
func DefaultLimits() Limits {
	return Limits{Default: DefaultCount, Max: DefaultMax}
}

// MaxExceededMessage is the inline error for a count above max.
func MaxExceededMessage(max int) string {
	return fmt.Sprintf("Maximum number of cats is %d", max)
}

// Request identifies one fetch. Only the result of the request carrying the
// state's current generation is ever applied.
type Request struct {
	Generation uint64
	Count      int
}

// Result is the outcome of executing a Request.
type Result struct {
	Request Request
	Items   []Item
	Err     error
}

// State is everything the screen renders.
type State struct {
	Items            []Item
	PendingCountText string
	ErrorMessage     string
	Loading          bool

	// Generation is bumped by every issued request.
	Generation uint64
	// LastCount is the count of the most recently issued request.
	LastCount int
}

// Initial returns the state shown before any fetch has been issued.
func Initial() State {
	return State{Items: Placeholders()}
}

// SetPending records the raw text of the count field.
func (s State) SetPending(text string) State {
	s.PendingCountText = text
	return s
}

// Submit validates text as a count. It always clears ErrorMessage first.
// On a validation failure the returned error is a *ValidationError, the
// message is shown, Items are untouched and no request is issued.
func (s State) Submit(text string, limits Limits) (State, *Request, error) {
	s.ErrorMessage = ""
	s.PendingCountText = text

	n, err := ParseCount(text, limits)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			s.ErrorMessage = ve.Message
		}
		return s, nil, err
	}
	next, req := s.Begin(n)
	return next, &req, nil
}

// Begin issues a request for count images without parsing. Any request
// still in flight becomes stale.
func (s State) Begin(count int) (State, Request) {
	s.Generation++
	s.LastCount = count
	s.Loading = true
	return s, Request{Generation: s.Generation, Count: count}
}

// Resolve applies a finished request. Results from superseded requests
// leave the state unchanged.
func (s State) Resolve(res Result) State {
	if res.Request.Generation != s.Generation {
		return s
	}
	s.Loading = false
	if res.Err != nil {
		s.ErrorMessage = MsgFetchFailed
		return s
	}
	items := res.Items
	if len(items) > res.Request.Count {
		items = items[:res.Request.Count]
	}
	s.Items = append([]Item(nil), items...)
	return s
}

// Title is the screen heading for the current items.
func (s State) Title() string {
	if len(s.Items) == 0 {
		return "Random Cat Generator"
	}
	return fmt.Sprintf("%d number of cats has been found!", len(s.Items))
}

// ParseCount converts raw field text into a count within [1, limits.Max].
func ParseCount(text string, limits Limits) (int, error) {
	trimmed := strings.TrimSpace(text)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		// Digits too long for an int are still a whole number, just too big.
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(trimmed, "-") {
				return 0, &ValidationError{Input: text, Message: MsgBelowMin, Err: err}
			}
			return 0, &ValidationError{Input: text, Message: MaxExceededMessage(limits.Max), Err: err}
		}
		return 0, &ValidationError{Input: text, Message: MsgNotANumber, Err: err}
	}
	if n > limits.Max {
		return 0, &ValidationError{Input: text, Message: MaxExceededMessage(limits.Max)}
	}
	if n < MinCount {
		return 0, &ValidationError{Input: text, Message: MsgBelowMin}
	}
	return n, nil
}
