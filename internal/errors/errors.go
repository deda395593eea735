package errors

import (
	"errors"
	"fmt"
)

var (
	ErrLoginRequired       = errors.New("login required")
	ErrSessionExpired      = errors.New("session expired")
	ErrRefreshFailed       = errors.New("failed to refresh access token")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrOutOfStock          = errors.New("requested quantity exceeds available stock")
	ErrProductNotInCart    = errors.New("product not in cart")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// CheckoutRejectedError carries the server's rejection message from a
// checkout-initiate call that returned status=false.
type CheckoutRejectedError struct {
	Message string
}

func (e *CheckoutRejectedError) Error() string {
	if e.Message == "" {
		return "checkout rejected by server"
	}
	return fmt.Sprintf("checkout rejected: %s", e.Message)
}

// APIError is a non-2xx response from the backend that was not resolved by
// the token refresh path.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}
