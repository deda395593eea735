// Package session owns the authenticated session: the signed-in user,
// the token pair, and the watcher that logs the session out at refresh
// token expiry.
package session

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pulsarbalaji/storefront-client/internal/domain"
	"github.com/pulsarbalaji/storefront-client/pkg/constant"
)

// Manager is the single owner of session state. The rest of the
// application sees it only through Snapshot and the Login/Logout
// operations.
type Manager struct {
	mu      sync.Mutex
	store   domain.SessionStore
	current *domain.Session
	timer   *time.Timer

	// onExpire runs after an expiry- or failure-triggered logout; the CLI
	// uses it to prompt for a new login.
	onExpire func()
}

func NewManager(store domain.SessionStore, onExpire func()) *Manager {
	return &Manager{store: store, onExpire: onExpire}
}

// Login accepts an already-issued credential set, persists it and arms
// the refresh-expiry watcher. It performs no network call of its own.
func (m *Manager) Login(sess domain.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(constant.StorageKeyAccess, sess.AccessToken); err != nil {
		return err
	}
	if err := m.store.Set(constant.StorageKeyRefresh, sess.RefreshToken); err != nil {
		return err
	}
	if err := m.store.Set(constant.StorageKeyUser, string(userJSON)); err != nil {
		return err
	}

	m.current = &sess
	m.armWatcherLocked(sess.RefreshToken)

	return nil
}

// Logout clears the store and in-memory state synchronously. It is the
// single exit path for explicit logout, forced logout on refresh failure
// and expiry-triggered logout.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logoutLocked()
}

func (m *Manager) logoutLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}

	m.current = nil
	if err := m.store.Clear(); err != nil {
		log.Printf("warn: failed to clear session store: %v", err)
	}
}

// ForceLogout is the logout used by the HTTP client's failure path: it
// clears the session and fires the expiry callback.
func (m *Manager) ForceLogout() {
	m.Logout()

	if m.onExpire != nil {
		m.onExpire()
	}
}

// RestoreOnStartup repopulates in-memory state from a previous run. A
// missing, expired or undecodable refresh token means the session is not
// restored and any stored remnants are cleared.
func (m *Manager) RestoreOnStartup() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	refresh, ok := m.store.Get(constant.StorageKeyRefresh)
	if !ok || refresh == "" {
		return false
	}

	expiry, err := refreshExpiry(refresh)
	if err != nil || !time.Now().Before(expiry) {
		m.logoutLocked()
		return false
	}

	access, _ := m.store.Get(constant.StorageKeyAccess)
	userJSON, ok := m.store.Get(constant.StorageKeyUser)
	if !ok {
		m.logoutLocked()
		return false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		m.logoutLocked()
		return false
	}

	m.current = &domain.Session{User: user, AccessToken: access, RefreshToken: refresh}
	m.armWatcherLocked(refresh)

	return true
}

// Snapshot returns a read-only copy of the current session.
func (m *Manager) Snapshot() (domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return domain.Session{}, false
	}

	return *m.current, true
}

// armWatcherLocked schedules the one-shot logout at refresh token expiry,
// cancelling any previously scheduled timer. An undecodable token is
// treated as expired now.
func (m *Manager) armWatcherLocked(refresh string) {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}

	expiry, err := refreshExpiry(refresh)
	if err != nil {
		log.Printf("warn: undecodable refresh token, logging out: %v", err)
		expiry = time.Now()
	}

	until := time.Until(expiry)
	if until < 0 {
		until = 0
	}

	m.timer = time.AfterFunc(until, func() {
		m.Logout()

		if m.onExpire != nil {
			m.onExpire()
		}
	})
}

// refreshExpiry decodes the embedded expiry claim. The client holds no
// signing key, so the token is parsed without signature verification;
// validity is ultimately the backend's call.
func refreshExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("refresh token has no expiry claim")
	}

	return claims.ExpiresAt.Time, nil
}
