package client

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/pulsarbalaji/storefront-client/config"
)

// GoogleAuthCodeURL builds the consent URL a user visits to obtain an
// authorization code for Google sign-in.
func GoogleAuthCodeURL(cfg *config.Config, redirectURL string) string {
	return googleOAuthConfig(cfg, redirectURL).AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// GoogleIDToken exchanges an authorization code for Google's ID token,
// which the backend's google-auth/ endpoint verifies and converts into a
// storefront token pair. The provider itself stays a black box.
func GoogleIDToken(ctx context.Context, cfg *config.Config, redirectURL, code string) (string, error) {
	token, err := googleOAuthConfig(cfg, redirectURL).Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange google auth code: %w", err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", fmt.Errorf("google token response carried no id_token")
	}

	return idToken, nil
}

func googleOAuthConfig(cfg *config.Config, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}
