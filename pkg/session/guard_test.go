package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kanban-board/internal/token"
)

var guardSecret = []byte("guard-secret")

type recordingNavigator struct {
	visited []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.visited = append(n.visited, path)
}

func newTestGuard() (*Guard, *MemStore, *recordingNavigator) {
	store := NewMemStore()
	nav := &recordingNavigator{}
	return NewGuard(store, nav), store, nav
}

func signedToken(t *testing.T, expiresAt int64) string {
	t.Helper()

	raw, err := token.Encode(token.Claims{
		UserID:    "u-1",
		Username:  "alice",
		ExpiresAt: expiresAt,
	}, guardSecret)
	require.NoError(t, err)
	return raw
}

func TestExpired_PastExpiry(t *testing.T) {
	guard, _, _ := newTestGuard()

	raw := signedToken(t, time.Now().Add(-time.Second).Unix())
	assert.True(t, guard.Expired(raw))
}

func TestExpired_FutureExpiry(t *testing.T) {
	guard, _, _ := newTestGuard()

	raw := signedToken(t, time.Now().Add(time.Hour).Unix())
	assert.False(t, guard.Expired(raw))
}

func TestExpired_UndecodableFailsClosed(t *testing.T) {
	guard, _, _ := newTestGuard()

	assert.True(t, guard.Expired("definitely not a token"))
}

func TestExpired_MissingExpiryCountsAsFresh(t *testing.T) {
	// A token that decodes but carries no expiry is treated as not
	// expired. The asymmetry with the undecodable case is intentional.
	guard, _, _ := newTestGuard()

	raw := signedToken(t, 0)
	assert.False(t, guard.Expired(raw))
}

func TestLoggedIn(t *testing.T) {
	guard, store, _ := newTestGuard()

	assert.False(t, guard.LoggedIn(), "empty store means logged out")

	require.NoError(t, store.Save(signedToken(t, time.Now().Add(time.Hour).Unix())))
	assert.True(t, guard.LoggedIn())

	require.NoError(t, store.Save(signedToken(t, time.Now().Add(-time.Hour).Unix())))
	assert.False(t, guard.LoggedIn(), "expired token means logged out")
}

func TestLogin_StoresTokenAndNavigatesToBoard(t *testing.T) {
	guard, store, nav := newTestGuard()

	raw := signedToken(t, time.Now().Add(time.Hour).Unix())
	require.NoError(t, guard.Login(raw))

	stored, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, raw, stored)
	assert.Equal(t, []string{BoardPath}, nav.visited)
}

func TestLogout_ClearsTokenAndNavigatesToLogin(t *testing.T) {
	guard, store, nav := newTestGuard()

	require.NoError(t, store.Save(signedToken(t, time.Now().Add(time.Hour).Unix())))
	require.NoError(t, guard.Logout())

	_, ok := store.Token()
	assert.False(t, ok)
	assert.Equal(t, []string{LoginPath}, nav.visited)
}

func TestProfile_ReturnsClaimsWithoutVerification(t *testing.T) {
	guard, store, _ := newTestGuard()

	_, ok := guard.Profile()
	assert.False(t, ok, "no stored token")

	require.NoError(t, store.Save(signedToken(t, time.Now().Add(time.Hour).Unix())))

	claims, ok := guard.Profile()
	require.True(t, ok)
	assert.Equal(t, "alice", claims.Username)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/token"
	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Token()
	assert.False(t, ok)

	require.NoError(t, store.Save("some.token.value"))
	raw, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "some.token.value", raw)

	require.NoError(t, store.Clear())
	_, ok = store.Token()
	assert.False(t, ok)

	// Clearing an already empty store is not an error.
	require.NoError(t, store.Clear())
}
