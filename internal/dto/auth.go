package dto

import "github.com/pulsarbalaji/storefront-client/internal/domain"

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OTPRequestInput struct {
	Phone string `json:"phone"`
}

type OTPVerifyInput struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type GoogleAuthInput struct {
	IDToken string `json:"id_token"`
}

// TokenResponse is the credential payload issued by every successful
// authentication exchange (password, OTP verify, Google).
type TokenResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    domain.User `json:"user"`
}

type RefreshInput struct {
	Refresh string `json:"refresh"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

type LogoutInput struct {
	Refresh string `json:"refresh"`
}
