// Package notus implements a strongly-typed HTTP client for the Notus REST API.
//
// Coverage: Implements the resources this app consumes, grouped the way the API
// groups them: wallets/* (smart wallet registration, portfolio, history, metadata),
// crypto/* (transfer and swap quotes, user operation execution, chains and tokens),
// liquidity/* (pools and liquidity amounts), fiat/* (PIX deposit/withdraw) and
// kyc/* (individual verification sessions plus presigned document uploads).
//
// Notes:
//   - Authentication is a static x-api-key header.
//   - Responses are plain JSON objects; failures carry {message, id} bodies.
//   - Any non-2xx response or transport failure is surfaced as *APIError. An error
//     that is already an *APIError is never wrapped a second time.
//   - Method, path and field names mirror the upstream API verbatim; they are a
//     compatibility constraint, not a style choice.
package notus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Default HTTP timeouts tuned for server-side usage.
var (
	DefaultHTTPClient = &http.Client{Timeout: 30 * time.Second}
)

// NewClient constructs a new API client. base should be like "https://api.notus.team/api/v1".
func NewClient(base string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c := &Client{
		BaseURL:   u,
		HTTP:      DefaultHTTPClient,
		UserAgent: "notus-go/1.0",
		Logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Option functional options.
type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTP = h } }
func WithAPIKey(key string) Option         { return func(c *Client) { c.APIKey = key } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithLogger(l zerolog.Logger) Option   { return func(c *Client) { c.Logger = l } }

type Client struct {
	BaseURL   *url.URL
	HTTP      *http.Client
	APIKey    string
	UserAgent string
	Logger    zerolog.Logger
}

// APIError is the single transport-level error type. It carries the HTTP status,
// the upstream error identifier when the API provides one, and the raw response
// body for diagnostics. A StatusCode of 0 means the request never got a response.
type APIError struct {
	StatusCode int
	ID         string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("notus: request failed: %s", e.Message)
	}
	if e.ID != "" {
		return fmt.Sprintf("notus: http %d (%s): %s", e.StatusCode, e.ID, e.Message)
	}
	return fmt.Sprintf("notus: http %d: %s", e.StatusCode, e.Message)
}

// errorBody is the shape of upstream failure payloads.
type errorBody struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func newAPIError(status int, body []byte) *APIError {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	msg := eb.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{
		StatusCode: status,
		ID:         eb.ID,
		Message:    msg,
		Body:       truncateString(string(body), 2048),
	}
}

// --- Core HTTP execution with logging ---
func (c *Client) do(
	ctx context.Context,
	method, p string,
	q url.Values,
	body any,
	out any,
) error {
	u := *c.BaseURL
	u.Path = path.Join(u.Path, p)
	u.RawQuery = q.Encode()

	// --- Build request body ---
	var r io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		r = bytes.NewReader(buf)
		contentType = "application/json"
	}

	// --- Build request ---
	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	// --- Execute request ---
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read body: %v", err)}
	}

	// --- Logging response ---
	c.Logger.Info().
		Str("method", method).
		Str("url", u.String()).
		Int("status", resp.StatusCode).
		Str("duration", time.Since(start).String()).
		Msg("notus response")

	// --- Status check ---
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, b)
	}

	// --- Decode output ---
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// doJSON decodes the response body into T.
func doJSON[T any](c *Client, ctx context.Context, method, p string, q url.Values, in any) (T, error) {
	var out T
	if err := c.do(ctx, method, p, q, in, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// --- Helpers ---
func truncateString(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }
