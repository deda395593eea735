// Package client is the typed gateway to the storefront backend: every
// outbound call goes through the token-attaching, refresh-and-retry
// transport in this package.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pulsarbalaji/storefront-client/config"
	"github.com/pulsarbalaji/storefront-client/internal/domain"
	"github.com/pulsarbalaji/storefront-client/internal/dto"
	autherror "github.com/pulsarbalaji/storefront-client/internal/errors"
)

type Client struct {
	baseURL string
	// authed routes requests through the AuthTransport; raw is used for
	// the unauthenticated exchanges (login, OTP, token refresh itself).
	authed Doer
	raw    *http.Client
}

// New builds a client over cfg.APIBaseURL. onAuthFailure is invoked when
// the refresh path gives up on the session.
func New(cfg *config.Config, store domain.SessionStore, onAuthFailure func()) *Client {
	raw := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second}

	c := &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		raw:     raw,
	}
	c.authed = NewAuthTransport(raw, store, c, onAuthFailure)

	return c
}

// RefreshAccessToken implements TokenRefresher against the backend's
// token/refresh/ endpoint. It deliberately bypasses the auth transport:
// a refresh must never trigger another refresh.
func (c *Client) RefreshAccessToken(ctx context.Context, refresh string) (string, error) {
	var out dto.RefreshResponse
	if err := c.postJSON(ctx, c.raw, "token/refresh/", dto.RefreshInput{Refresh: refresh}, &out); err != nil {
		return "", err
	}

	if out.Access == "" {
		return "", fmt.Errorf("refresh endpoint returned no access token")
	}

	return out.Access, nil
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// postJSON sends body as JSON through the given sender and decodes a
// 2xx response into out (out may be nil).
func (c *Client) postJSON(ctx context.Context, sender Doer, path string, body, out interface{}) error {
	return c.sendJSON(ctx, sender, http.MethodPost, path, body, out)
}

func (c *Client) sendJSON(ctx context.Context, sender Doer, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := sender.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.sendJSON(ctx, c.authed, http.MethodGet, path, nil, out)
}

// apiError converts a non-2xx response into an APIError, picking up the
// backend's error/message field when present.
func apiError(resp *http.Response) error {
	apiErr := &autherror.APIError{StatusCode: resp.StatusCode}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil {
		apiErr.Message = body.Error
		if apiErr.Message == "" {
			apiErr.Message = body.Message
		}
	}

	return apiErr
}
