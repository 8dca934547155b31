// Package privy implements a minimal client for the Privy identity API. The app
// only needs one thing from it: resolving a session token into the user and the
// embedded EOA address that seeds the custodial smart wallet.
package privy

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
	"github.com/rs/zerolog/log"
)

var DefaultHTTPClient = &http.Client{Timeout: 10 * time.Second}

type Client struct {
	BaseURL   *url.URL
	HTTP      *http.Client
	AppID     string
	AppSecret string
	Logger    zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTP = h } }
func WithLogger(l zerolog.Logger) Option   { return func(c *Client) { c.Logger = l } }

func NewClient(base, appID, appSecret string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c := &Client{
		BaseURL:   u,
		HTTP:      DefaultHTTPClient,
		AppID:     appID,
		AppSecret: appSecret,
		Logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// User is the authenticated principal with the EOA their smart wallet derives from.
type User struct {
	ID            string `json:"id"`
	EOA           string `json:"walletAddress"`
	Email         string `json:"email,omitempty"`
	LinkedAccount string `json:"linkedAccountType,omitempty"`
}

// VerifyToken resolves a session token into the Privy user. An invalid or
// expired token yields an error; the caller treats that as unauthenticated.
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, errors.New("token is required")
	}

	u := *c.BaseURL
	u.Path = u.Path + "/api/v1/sessions/verify"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	// The session token owns the Authorization header; app credentials go in
	// their own headers so they cannot displace it.
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("privy-app-id", c.AppID)
	if c.AppSecret != "" {
		req.Header.Set("privy-app-secret", c.AppSecret)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	c.Logger.Debug().
		Int("status", resp.StatusCode).
		Str("duration", time.Since(start).String()).
		Msg("privy verify")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("privy: http %d: %s", resp.StatusCode, truncate(string(b), 512))
	}

	var user User
	if err := json.Unmarshal(b, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	if user.EOA == "" {
		return nil, errors.New("privy: user has no embedded wallet")
	}
	return &user, nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
