package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulsarbalaji/storefront-client/internal/client"
	"github.com/pulsarbalaji/storefront-client/internal/domain"
	"github.com/pulsarbalaji/storefront-client/internal/dto"
)

func startSession(a *app, tokens *dto.TokenResponse) error {
	err := a.sessions.Login(domain.Session{
		User:         tokens.User,
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
	})
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	fmt.Printf("logged in as %s (%s)\n", tokens.User.FullName, tokens.User.Email)

	return nil
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := a.api.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			return startSession(a, tokens)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newOTPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otp",
		Short: "Log in with a one time password",
	}

	var phone string

	request := &cobra.Command{
		Use:   "request",
		Short: "Request an OTP for a phone number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.api.RequestOTP(cmd.Context(), phone); err != nil {
				return err
			}

			fmt.Println("otp sent")

			return nil
		},
	}
	request.Flags().StringVar(&phone, "phone", "", "phone number")
	request.MarkFlagRequired("phone")

	var verifyPhone, code string

	verify := &cobra.Command{
		Use:   "verify",
		Short: "Verify an OTP and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := a.api.VerifyOTP(cmd.Context(), verifyPhone, code)
			if err != nil {
				return err
			}

			return startSession(a, tokens)
		},
	}
	verify.Flags().StringVar(&verifyPhone, "phone", "", "phone number")
	verify.Flags().StringVar(&code, "code", "", "otp code")
	verify.MarkFlagRequired("phone")
	verify.MarkFlagRequired("code")

	cmd.AddCommand(request, verify)

	return cmd
}

func newGoogleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "google",
		Short: "Log in with a Google account",
	}

	var redirectURL string

	url := &cobra.Command{
		Use:   "url",
		Short: "Print the Google consent URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(client.GoogleAuthCodeURL(a.cfg, redirectURL))

			return nil
		},
	}
	url.Flags().StringVar(&redirectURL, "redirect", "http://localhost/callback", "oauth redirect url")

	var code, loginRedirect string

	login := &cobra.Command{
		Use:   "login",
		Short: "Exchange a Google auth code and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			idToken, err := client.GoogleIDToken(cmd.Context(), a.cfg, loginRedirect, code)
			if err != nil {
				return err
			}

			tokens, err := a.api.GoogleLogin(cmd.Context(), idToken)
			if err != nil {
				return err
			}

			return startSession(a, tokens)
		},
	}
	login.Flags().StringVar(&code, "code", "", "authorization code from the consent page")
	login.Flags().StringVar(&loginRedirect, "redirect", "http://localhost/callback", "oauth redirect url")
	login.MarkFlagRequired("code")

	cmd.AddCommand(url, login)

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear local credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sess, ok := a.sessions.Snapshot(); ok {
				// Best effort; local credentials are cleared regardless.
				if err := a.api.ServerLogout(cmd.Context(), sess.RefreshToken); err != nil {
					fmt.Printf("warn: server logout failed: %v\n", err)
				}
			}

			a.sessions.Logout()
			fmt.Println("logged out")

			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := a.sessions.Snapshot()
			if !ok {
				return fmt.Errorf("not logged in")
			}

			fmt.Printf("%s <%s> customer %d\n", sess.User.FullName, sess.User.Email, sess.User.CustomerID)

			return nil
		},
	}
}
