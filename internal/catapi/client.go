// Package catapi is a small client for TheCatAPI image search endpoint.
package catapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "https://api.thecatapi.com"
	// DefaultTimeout bounds a single search request.
	DefaultTimeout = 10 * time.Second

	searchPath   = "/v1/images/search"
	apiKeyHeader = "x-api-key"
	maxBodyBytes = 1 << 20
)

// Image is one record from the search endpoint.
type Image struct {
	ID     string `json:"id,omitempty"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Client performs image searches.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
	tracer  oteltrace.Tracer
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sends key in the x-api-key header. An empty key sends nothing.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d}
		}
	}
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client rooted at baseURL (DefaultBaseURL if empty).
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		tracer:  otel.Tracer("catfeed/catapi"),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SearchURL returns the request URL for a search of limit images.
func (c *Client) SearchURL(limit int) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + searchPath
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String()
}

// Search requests limit random images. The server may return a different
// number than asked for; callers truncate as needed.
func (c *Client) Search(ctx context.Context, limit int) ([]Image, error) {
	ctx, span := c.tracer.Start(ctx, "catapi.search",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.Int("catfeed.limit", limit)),
	)
	defer span.End()

	images, err := c.search(ctx, span, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("catfeed.result_count", len(images)))
	return images, nil
}

func (c *Client) search(ctx context.Context, span oteltrace.Span, limit int) ([]Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(limit), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search images: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.Debug("catapi response",
		"limit", limit,
		"status", resp.StatusCode,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	return decodeImages(io.LimitReader(resp.Body, maxBodyBytes))
}
