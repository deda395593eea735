package client

import (
	"context"
	"fmt"

	"github.com/pulsarbalaji/storefront-client/internal/dto"
)

// Login exchanges email/password credentials for a token pair and the
// user object. The caller hands the result to the session manager.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := c.postJSON(ctx, c.raw, "login/", dto.LoginInput{Email: email, Password: password}, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &out, nil
}

// RequestOTP asks the backend to send a one-time code to phone.
func (c *Client) RequestOTP(ctx context.Context, phone string) error {
	if err := c.postJSON(ctx, c.raw, "otp-request/", dto.OTPRequestInput{Phone: phone}, nil); err != nil {
		return fmt.Errorf("request otp: %w", err)
	}

	return nil
}

// VerifyOTP exchanges a received one-time code for a token pair.
func (c *Client) VerifyOTP(ctx context.Context, phone, code string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := c.postJSON(ctx, c.raw, "otp-verify/", dto.OTPVerifyInput{Phone: phone, Code: code}, &out); err != nil {
		return nil, fmt.Errorf("verify otp: %w", err)
	}

	return &out, nil
}

// GoogleLogin exchanges a Google ID token for a token pair. Obtaining
// the ID token is the caller's concern (see GoogleIDToken).
func (c *Client) GoogleLogin(ctx context.Context, idToken string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := c.postJSON(ctx, c.raw, "google-auth/", dto.GoogleAuthInput{IDToken: idToken}, &out); err != nil {
		return nil, fmt.Errorf("google login: %w", err)
	}

	return &out, nil
}

// ServerLogout revokes the refresh token server-side. Best effort: local
// logout proceeds regardless of the outcome.
func (c *Client) ServerLogout(ctx context.Context, refresh string) error {
	if err := c.postJSON(ctx, c.authed, "logout/", dto.LogoutInput{Refresh: refresh}, nil); err != nil {
		return fmt.Errorf("server logout: %w", err)
	}

	return nil
}
