package session_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsarbalaji/storefront-client/internal/domain"
	"github.com/pulsarbalaji/storefront-client/internal/session"
	"github.com/pulsarbalaji/storefront-client/internal/store"
	"github.com/pulsarbalaji/storefront-client/pkg/constant"
)

func mintToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func testSession(t *testing.T, refreshExpiresIn time.Duration) domain.Session {
	t.Helper()

	return domain.Session{
		User:         domain.User{ID: 1, Email: "test@example.com", CustomerID: 10},
		AccessToken:  "access-token",
		RefreshToken: mintToken(t, refreshExpiresIn),
	}
}

func TestManager_LoginPersistsSession(t *testing.T) {
	kv := store.NewMemoryStore()
	m := session.NewManager(kv, nil)

	sess := testSession(t, time.Hour)
	require.NoError(t, m.Login(sess))

	access, ok := kv.Get(constant.StorageKeyAccess)
	assert.True(t, ok)
	assert.Equal(t, "access-token", access)

	refresh, ok := kv.Get(constant.StorageKeyRefresh)
	assert.True(t, ok)
	assert.Equal(t, sess.RefreshToken, refresh)

	userJSON, ok := kv.Get(constant.StorageKeyUser)
	assert.True(t, ok)
	assert.Contains(t, userJSON, "test@example.com")

	snapshot, ok := m.Snapshot()
	assert.True(t, ok)
	assert.Equal(t, sess.User, snapshot.User)
}

func TestManager_LogoutClearsEverything(t *testing.T) {
	kv := store.NewMemoryStore()
	m := session.NewManager(kv, nil)

	require.NoError(t, m.Login(testSession(t, time.Hour)))
	m.Logout()

	_, ok := kv.Get(constant.StorageKeyAccess)
	assert.False(t, ok)

	_, ok = m.Snapshot()
	assert.False(t, ok)
}

func TestManager_RestoreOnStartup(t *testing.T) {
	kv := store.NewMemoryStore()
	m := session.NewManager(kv, nil)

	require.NoError(t, m.Login(testSession(t, time.Hour)))

	// A fresh manager over the same store simulates an app restart.
	restored := session.NewManager(kv, nil)
	assert.True(t, restored.RestoreOnStartup())

	snapshot, ok := restored.Snapshot()
	assert.True(t, ok)
	assert.Equal(t, "test@example.com", snapshot.User.Email)
}

func TestManager_RestoreNothingStored(t *testing.T) {
	m := session.NewManager(store.NewMemoryStore(), nil)

	assert.False(t, m.RestoreOnStartup())

	_, ok := m.Snapshot()
	assert.False(t, ok)
}

func TestManager_RestoreFailsClosedOnBadRefreshToken(t *testing.T) {
	tests := []struct {
		name    string
		refresh string
	}{
		{name: "garbage token", refresh: "not-a-jwt"},
		{name: "empty token", refresh: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemoryStore()
			require.NoError(t, kv.Set(constant.StorageKeyRefresh, tt.refresh))
			require.NoError(t, kv.Set(constant.StorageKeyAccess, "stale-access"))
			require.NoError(t, kv.Set(constant.StorageKeyUser, `{"id":1}`))

			m := session.NewManager(kv, nil)
			assert.False(t, m.RestoreOnStartup())

			_, ok := m.Snapshot()
			assert.False(t, ok)
		})
	}
}

func TestManager_RestoreFailsClosedOnExpiredRefreshToken(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(constant.StorageKeyRefresh, mintToken(t, -time.Minute)))
	require.NoError(t, kv.Set(constant.StorageKeyAccess, "stale-access"))
	require.NoError(t, kv.Set(constant.StorageKeyUser, `{"id":1}`))

	m := session.NewManager(kv, nil)
	assert.False(t, m.RestoreOnStartup())

	// The stale credentials must not survive the failed restore.
	_, ok := kv.Get(constant.StorageKeyAccess)
	assert.False(t, ok)
}

func TestManager_ExpiryWatcherLogsOut(t *testing.T) {
	expired := make(chan struct{}, 1)

	kv := store.NewMemoryStore()
	m := session.NewManager(kv, func() { expired <- struct{}{} })

	require.NoError(t, m.Login(testSession(t, 100*time.Millisecond)))

	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("expiry watcher did not fire")
	}

	_, ok := m.Snapshot()
	assert.False(t, ok)

	_, ok = kv.Get(constant.StorageKeyRefresh)
	assert.False(t, ok)
}

func TestManager_SecondLoginReplacesWatcher(t *testing.T) {
	var fires atomic.Int32

	kv := store.NewMemoryStore()
	m := session.NewManager(kv, func() { fires.Add(1) })

	// The first token would expire well before the second; only the
	// second schedule may fire.
	require.NoError(t, m.Login(testSession(t, 150*time.Millisecond)))
	require.NoError(t, m.Login(testSession(t, 600*time.Millisecond)))

	time.Sleep(350 * time.Millisecond)
	assert.Equal(t, int32(0), fires.Load(), "first login's watcher should have been cancelled")

	time.Sleep(600 * time.Millisecond)
	assert.Equal(t, int32(1), fires.Load(), "second login's watcher should fire exactly once")
}

func TestManager_ForceLogout(t *testing.T) {
	expired := make(chan struct{}, 1)

	kv := store.NewMemoryStore()
	m := session.NewManager(kv, func() { expired <- struct{}{} })

	require.NoError(t, m.Login(testSession(t, time.Hour)))
	m.ForceLogout()

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("expire callback not invoked")
	}

	_, ok := m.Snapshot()
	assert.False(t, ok)
}
