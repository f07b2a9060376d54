package feed

import (
	"context"
	"io"
	"log/slog"

	"catfeed/internal/catapi"
)

// Searcher fetches up to limit random images.
type Searcher interface {
	Search(ctx context.Context, limit int) ([]catapi.Image, error)
}

// Controller owns the feed State for one screen.
//
// Submit, Start and Resolve must be called from a single goroutine (the
// Bubble Tea update loop). Run performs the network call and is safe to call
// from any goroutine; it never touches State.
type Controller struct {
	state    State
	limits   Limits
	searcher Searcher
	logger   *slog.Logger
	closed   bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLimits overrides the default and maximum counts.
func WithLimits(l Limits) Option {
	return func(c *Controller) { c.limits = l }
}

// WithLogger sets the logger used for fetch failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller showing the placeholder images.
func NewController(s Searcher, opts ...Option) *Controller {
	c := &Controller{
		state:    Initial(),
		limits:   DefaultLimits(),
		searcher: s,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State { return c.state }

// Limits returns the configured count limits.
func (c *Controller) Limits() Limits { return c.limits }

// SetPending records the current count field text.
func (c *Controller) SetPending(text string) {
	c.state = c.state.SetPending(text)
}

// Start issues the initial fetch for the default count.
func (c *Controller) Start() Request {
	var req Request
	c.state, req = c.state.Begin(c.limits.Default)
	return req
}

// Refresh re-issues the most recent count, or the default if none.
func (c *Controller) Refresh() Request {
	n := c.state.LastCount
	if n == 0 {
		n = c.limits.Default
	}
	c.state.ErrorMessage = ""
	var req Request
	c.state, req = c.state.Begin(n)
	return req
}

// Submit validates text and, when valid, returns the request to run.
func (c *Controller) Submit(text string) (*Request, error) {
	next, req, err := c.state.Submit(text, c.limits)
	c.state = next
	if err != nil {
		c.logger.Debug("count rejected", "input", text, "err", err)
	}
	return req, err
}

// Run executes req against the searcher. Failures come back as a
// *TransportError on the Result.
func (c *Controller) Run(ctx context.Context, req Request) Result {
	images, err := c.searcher.Search(ctx, req.Count)
	if err != nil {
		return Result{Request: req, Err: &TransportError{Count: req.Count, Err: err}}
	}
	items := make([]Item, len(images))
	for i, img := range images {
		items[i] = Item{ID: img.ID, URL: img.URL, Width: img.Width, Height: img.Height}
	}
	return Result{Request: req, Items: items}
}

// Resolve applies a finished fetch. It reports whether the state changed:
// results for superseded requests, or arriving after Close, are dropped.
func (c *Controller) Resolve(res Result) bool {
	if c.closed {
		c.logger.Debug("dropping result after close", "generation", res.Request.Generation)
		return false
	}
	if res.Request.Generation != c.state.Generation {
		c.logger.Debug("dropping stale result",
			"generation", res.Request.Generation,
			"current", c.state.Generation)
		return false
	}
	if res.Err != nil {
		c.logger.Warn("fetch failed", "count", res.Request.Count, "err", res.Err)
	} else {
		c.logger.Info("fetched cats", "requested", res.Request.Count, "received", len(res.Items))
	}
	c.state = c.state.Resolve(res)
	return true
}

// Close marks the screen as torn down. Later results are ignored.
func (c *Controller) Close() {
	c.closed = true
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool { return c.closed }
