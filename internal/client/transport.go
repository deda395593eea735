package client

//go:generate mockgen -destination=../mocks/mock_token_refresher.go -package=mocks github.com/pulsarbalaji/storefront-client/internal/client TokenRefresher

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pulsarbalaji/storefront-client/internal/domain"
	autherror "github.com/pulsarbalaji/storefront-client/internal/errors"
	"github.com/pulsarbalaji/storefront-client/pkg/constant"
)

// Doer is the send function the auth decorator wraps.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenRefresher exchanges a refresh token for a new access token.
type TokenRefresher interface {
	RefreshAccessToken(ctx context.Context, refresh string) (string, error)
}

// AuthTransport is the single outbound gateway for authenticated calls.
// It attaches the stored access token to every request and, on a 401,
// performs exactly one refresh-and-retry before giving up. A refresh
// failure forces a logout; this is the only component allowed to do that
// from an error path.
type AuthTransport struct {
	next      Doer
	store     domain.SessionStore
	refresher TokenRefresher

	// onAuthFailure runs when the session is unrecoverable (no refresh
	// token, or the refresh endpoint rejected it).
	onAuthFailure func()
}

func NewAuthTransport(next Doer, store domain.SessionStore, refresher TokenRefresher, onAuthFailure func()) *AuthTransport {
	return &AuthTransport{
		next:          next,
		store:         store,
		refresher:     refresher,
		onAuthFailure: onAuthFailure,
	}
}

// Do sends the request with the current access token attached. Structure
// guarantees at most one refresh and one retry per request: the retry's
// response is returned as-is, even if it is another 401.
func (t *AuthTransport) Do(req *http.Request) (*http.Response, error) {
	t.attach(req)

	resp, err := t.next.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	refresh, ok := t.store.Get(constant.StorageKeyRefresh)
	if !ok || refresh == "" {
		t.failSession()
		// Propagate the original 401 to the caller.
		return resp, nil
	}

	access, err := t.refresher.RefreshAccessToken(req.Context(), refresh)
	if err != nil {
		resp.Body.Close()
		t.failSession()

		return nil, fmt.Errorf("%w: %v", autherror.ErrRefreshFailed, err)
	}

	if err := t.store.Set(constant.StorageKeyAccess, access); err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("persist refreshed access token: %w", err)
	}

	resp.Body.Close()

	retry, err := cloneRequest(req)
	if err != nil {
		return nil, err
	}
	retry.Header.Set(constant.HeaderAuthorization, constant.BearerScheme+access)

	return t.next.Do(retry)
}

// attach sets the bearer header when an access token is stored; absent a
// token the request goes out unauthenticated.
func (t *AuthTransport) attach(req *http.Request) {
	access, ok := t.store.Get(constant.StorageKeyAccess)
	if !ok || access == "" {
		return
	}

	req.Header.Set(constant.HeaderAuthorization, constant.BearerScheme+access)
}

func (t *AuthTransport) failSession() {
	if t.onAuthFailure != nil {
		t.onAuthFailure()
	}
}

// cloneRequest rebuilds the request for the retry, re-creating the body
// from GetBody so the payload is sent again in full.
func cloneRequest(req *http.Request) (*http.Request, error) {
	retry := req.Clone(req.Context())

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind request body for retry: %w", err)
		}
		retry.Body = body
	}

	return retry, nil
}
