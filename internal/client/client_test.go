package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsarbalaji/storefront-client/config"
	"github.com/pulsarbalaji/storefront-client/internal/client"
	"github.com/pulsarbalaji/storefront-client/internal/domain"
	autherror "github.com/pulsarbalaji/storefront-client/internal/errors"
	"github.com/pulsarbalaji/storefront-client/internal/store"
	"github.com/pulsarbalaji/storefront-client/pkg/constant"
)

func newTestClient(t *testing.T, srvURL string, kv domain.SessionStore, onAuthFailure func()) *client.Client {
	t.Helper()

	cfg := &config.Config{APIBaseURL: srvURL, HTTPTimeoutSec: 5}

	return client.New(cfg, kv, onAuthFailure)
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login/", r.URL.Path)

		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if in.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access":  "access-token",
			"refresh": "refresh-token",
			"user":    map[string]interface{}{"id": 1, "email": in.Email, "customer_id": 10},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, store.NewMemoryStore(), nil)

	t.Run("success", func(t *testing.T) {
		tokens, err := c.Login(context.Background(), "test@example.com", "secret")
		require.NoError(t, err)

		assert.Equal(t, "access-token", tokens.Access)
		assert.Equal(t, "refresh-token", tokens.Refresh)
		assert.Equal(t, 10, tokens.User.CustomerID)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		_, err := c.Login(context.Background(), "test@example.com", "wrong")
		require.Error(t, err)

		var apiErr *autherror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "invalid credentials", apiErr.Message)
	})
}

func TestClient_RefreshAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/token/refresh/", r.URL.Path)

		var in struct {
			Refresh string `json:"refresh"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if in.Refresh != "valid-refresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		json.NewEncoder(w).Encode(map[string]string{"access": "new-access"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, store.NewMemoryStore(), nil)

	t.Run("success", func(t *testing.T) {
		access, err := c.RefreshAccessToken(context.Background(), "valid-refresh")
		require.NoError(t, err)
		assert.Equal(t, "new-access", access)
	})

	t.Run("rejected", func(t *testing.T) {
		_, err := c.RefreshAccessToken(context.Background(), "revoked")
		require.Error(t, err)
	})
}

// The full loop: a stale access token causes a 401, the client refreshes
// through its own token/refresh/ endpoint and transparently retries.
func TestClient_TransparentRefreshOnExpiredAccess(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(constant.StorageKeyAccess, "stale"))
	require.NoError(t, kv.Set(constant.StorageKeyRefresh, "valid-refresh"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token/refresh/":
			json.NewEncoder(w).Encode(map[string]string{"access": "fresh"})
		case "/products/":
			if r.Header.Get(constant.HeaderAuthorization) != "Bearer fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode([]domain.Product{{ID: 1, Name: "mug", Stock: 3}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, kv, nil)

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "mug", products[0].Name)

	access, _ := kv.Get(constant.StorageKeyAccess)
	assert.Equal(t, "fresh", access)
}

func TestClient_NotificationEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		if r.URL.Path == "/customer-notifications/10/" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data":    []map[string]interface{}{{"id": 1, "type": "order_status", "is_read": false}},
				"total":   1,
			})
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, store.NewMemoryStore(), nil)
	ctx := context.Background()

	list, err := c.FetchNotifications(ctx, 10)
	require.NoError(t, err)
	assert.True(t, list.Success)
	assert.Equal(t, 1, list.Total)

	require.NoError(t, c.MarkNotificationRead(ctx, 5))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/readnotifications/5/", gotPath)

	require.NoError(t, c.MarkAllNotificationsRead(ctx, 10))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/readnotifications/all/10/", gotPath)

	require.NoError(t, c.DeleteNotification(ctx, 5))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/notification/5/", gotPath)

	require.NoError(t, c.ClearNotifications(ctx, 10))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/notifications/clear/10/", gotPath)
}
