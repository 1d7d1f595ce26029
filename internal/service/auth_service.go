package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"go-kanban-board/internal/model"
	"go-kanban-board/internal/token"
)

// UserStore is the read-only slice of the user repository the auth service
// needs.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
}

// AuthService verifies credentials and issues signed session tokens. It is
// the only place that holds the signing secret on the issuance path.
type AuthService struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(users UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// VerifyCredentials checks a username/password pair against the stored hash.
// An unknown username and a wrong password both come back as
// model.ErrInvalidCredentials so the response never reveals which half was
// wrong. Infrastructure faults are returned as distinct wrapped errors.
func (s *AuthService) VerifyCredentials(ctx context.Context, username string, password string) (model.User, error) {
	if username == "" || password == "" {
		return model.User{}, model.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates the credentials and returns a signed token whose
// claims carry the user's identity and an expiry one TTL from now.
func (s *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	user, err := s.VerifyCredentials(ctx, username, password)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	claims := token.Claims{
		UserID:    user.ID,
		Username:  user.Username,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}

	signed, err := token.Encode(claims, s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks the token's structure and signature. Expiry is not
// enforced here; see the request gate for the server-side policy.
func (s *AuthService) ValidateToken(raw string) (token.Claims, error) {
	return token.VerifyAndDecode(raw, s.secret)
}
