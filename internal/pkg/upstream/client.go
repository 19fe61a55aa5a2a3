// Package upstream reads the remote REST API that catalog pages are built from.
// Every endpoint answers with a {success, data} envelope; anything else is a failure,
// and the Fetch helpers turn failures into empty results.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 8 << 20

var (
	// ErrNotConfigured is returned when no base URL is set.
	ErrNotConfigured = errors.New("upstream: base URL not configured")
	// ErrUnsuccessful is returned for a well-formed envelope with success=false.
	ErrUnsuccessful = errors.New("upstream: request unsuccessful")
	// ErrBadEnvelope is returned for responses that are not a valid envelope.
	ErrBadEnvelope = errors.New("upstream: malformed response envelope")
	// ErrStatus is returned for non-2xx responses.
	ErrStatus = errors.New("upstream: unexpected status")
)

const envelopeSchema = `{
	"type": "object",
	"required": ["success"],
	"properties": {
		"success": {"type": "boolean"},
		"message": {"type": "string"}
	}
}`

// Envelope is the response wrapper used by every upstream endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// Client performs uncached GETs against the upstream API.
type Client struct {
	baseURL string
	http    *http.Client
	schema  *gojsonschema.Schema
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(envelopeSchema))
	if err != nil {
		return nil, fmt.Errorf("compile envelope schema: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		schema:  schema,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get fetches path and returns the envelope's data.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrStatus, path, resp.StatusCode)
	}

	env, err := c.decodeEnvelope(body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrUnsuccessful, path, env.Message)
	}
	return env.Data, nil
}

func (c *Client) decodeEnvelope(body []byte) (*Envelope, error) {
	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrBadEnvelope, strings.Join(problems, "; "))
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	return &env, nil
}

// FetchList returns the decoded list at path, or an empty list on any failure.
func FetchList[T any](ctx context.Context, c *Client, path string, query url.Values) []T {
	data, err := c.Get(ctx, path, query)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("Upstream list unavailable, using empty result")
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("Upstream list has unexpected shape, using empty result")
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// FetchOne returns the decoded object at path, or nil on any failure.
func FetchOne[T any](ctx context.Context, c *Client, path string) *T {
	data, err := c.Get(ctx, path, nil)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("Upstream item unavailable")
		return nil
	}

	var item T
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &item); err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("Upstream item has unexpected shape")
		return nil
	}
	return &item
}
