// Package client is the HTTP client for the gamevault API used by the
// CLI.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/avolchek/gamevault/internal/errs"
	"github.com/avolchek/gamevault/internal/model"
)

// TokenSource yields the bearer token for outgoing requests. An empty
// string means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource carrying a fixed token.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Client talks to a gamevault server. The token is read from the
// source on every call, so a login performed mid-process is picked up
// without rebuilding the client.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// Option tweaks Client construction.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTLS configures TLS from an optional CA bundle path. insecure
// skips certificate verification (dev only).
func WithTLS(caPath string, insecure bool) Option {
	return func(c *Client) {
		cfg := &tls.Config{}
		if insecure {
			cfg.InsecureSkipVerify = true
		} else if caPath != "" {
			pem, err := os.ReadFile(caPath)
			if err == nil {
				pool := x509.NewCertPool()
				if pool.AppendCertsFromPEM(pem) {
					cfg.RootCAs = pool
				}
			}
		}
		c.http = &http.Client{
			Timeout:   30 * time.Second,
			Transport: &http.Transport{TLSClientConfig: cfg},
		}
	}
}

// New builds a Client for baseURL (scheme and host, no trailing slash).
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type authResponse struct {
	Token string         `json:"token"`
	User  model.Identity `json:"user"`
}

// Signup registers a new account and returns the issued session.
func (c *Client) Signup(ctx context.Context, email, password string) (*model.Session, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/signup",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &model.Session{Token: out.Token, Identity: out.User}, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &model.Session{Token: out.Token, Identity: out.User}, nil
}

// Me returns the identity the server derives from the current token.
func (c *Client) Me(ctx context.Context) (*model.Identity, error) {
	var out model.Identity
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListGames fetches all games with nested reviews.
func (c *Client) ListGames(ctx context.Context) ([]model.Game, error) {
	var out []model.Game
	if err := c.do(ctx, http.MethodGet, "/api/games", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGame adds a game.
func (c *Client) CreateGame(ctx context.Context, title string) (*model.Game, error) {
	var out model.Game
	err := c.do(ctx, http.MethodPost, "/api/games",
		map[string]string{"title": title}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteGame removes a game with all its reviews.
func (c *Client) DeleteGame(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/games/%d", id), nil, nil)
}

// CreateReview posts a review for a game.
func (c *Client) CreateReview(ctx context.Context, gameID int64, content string) (*model.Review, error) {
	var out model.Review
	err := c.do(ctx, http.MethodPost, "/api/reviews",
		map[string]any{"game_id": gameID, "content": content}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReview removes one of the caller's reviews.
func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError maps an error response back onto the shared sentinels so
// callers can branch with errors.Is.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)

	var sentinel error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if body.Error == errs.ErrInvalidCredentials.Error() {
			sentinel = errs.ErrInvalidCredentials
		} else {
			sentinel = errs.ErrUnauthenticated
		}
	case http.StatusForbidden:
		sentinel = errs.ErrForbidden
	case http.StatusNotFound:
		sentinel = errs.ErrNotFound
	case http.StatusConflict:
		sentinel = errs.ErrEmailTaken
	case http.StatusTooManyRequests:
		sentinel = errs.ErrRateLimited
	}

	msg := body.Error
	if msg == "" {
		msg = resp.Status
	}
	if sentinel != nil {
		if msg == sentinel.Error() {
			return sentinel
		}
		return fmt.Errorf("%s: %w", msg, sentinel)
	}
	return errors.New("server error: " + msg)
}
