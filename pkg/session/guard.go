// Package session is the client-side session guard. It decides, without
// contacting the server, whether a locally stored token is still worth
// presenting, and manages the token's storage lifecycle. It never verifies
// the token's signature; that trust boundary belongs to the server alone,
// and these checks exist only so the UI does not show an authenticated
// surface with a token the server would reject.
package session

import (
	"time"

	"go-kanban-board/internal/token"
)

const (
	// BoardPath is where a successful login lands.
	BoardPath = "/board"
	// LoginPath is where a logout lands.
	LoginPath = "/login"
)

// TokenStore persists at most one token. An absent token means logged out.
type TokenStore interface {
	Token() (string, bool)
	Save(raw string) error
	Clear() error
}

// Navigator moves the UI to another surface.
type Navigator interface {
	Navigate(path string)
}

type Guard struct {
	store TokenStore
	nav   Navigator
	now   func() time.Time
}

func NewGuard(store TokenStore, nav Navigator) *Guard {
	return &Guard{store: store, nav: nav, now: time.Now}
}

// LoggedIn reports whether a stored token exists and has not expired.
func (g *Guard) LoggedIn() bool {
	raw, ok := g.store.Token()
	if !ok {
		return false
	}
	return !g.Expired(raw)
}

// Expired reports whether the token is past its embedded expiry. A token
// that cannot be decoded counts as expired (fail closed); a token that
// decodes but carries no expiry counts as not expired.
func (g *Guard) Expired(raw string) bool {
	claims, err := token.Decode(raw)
	if err != nil {
		return true
	}
	return claims.ExpiredAt(g.now())
}

// Profile returns the stored token's claims for display purposes. The
// decode is unverified, so the result must never drive an authorization
// decision.
func (g *Guard) Profile() (token.Claims, bool) {
	raw, ok := g.store.Token()
	if !ok {
		return token.Claims{}, false
	}

	claims, err := token.Decode(raw)
	if err != nil {
		return token.Claims{}, false
	}
	return claims, true
}

// Login stores the freshly issued token and navigates to the board.
func (g *Guard) Login(raw string) error {
	if err := g.store.Save(raw); err != nil {
		return err
	}

	g.nav.Navigate(BoardPath)
	return nil
}

// Logout removes the stored token and navigates to the login surface.
func (g *Guard) Logout() error {
	if err := g.store.Clear(); err != nil {
		return err
	}

	g.nav.Navigate(LoginPath)
	return nil
}
