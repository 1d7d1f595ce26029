// Package token encodes and decodes the signed bearer credential used for
// session authentication. Signature verification and untrusted decoding are
// deliberately separate entry points: the server verifies, the client only
// inspects. Expiry is never enforced here; callers own that decision.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("malformed token")
	ErrBadSignature = errors.New("invalid token signature")
)

// Claims is the payload carried inside a credential. ExpiresAt and IssuedAt
// are epoch seconds; a zero ExpiresAt means the token carries no expiry.
type Claims struct {
	UserID    string
	Username  string
	IssuedAt  int64
	ExpiresAt int64
}

// ExpiredAt reports whether the claims are expired at the given instant.
// Claims without an expiry never expire.
func (c Claims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt == 0 {
		return false
	}
	return now.UnixMilli() >= c.ExpiresAt*1000
}

// Encode signs the claims with HMAC-SHA256 and returns the compact token
// string. Fields with zero values are omitted from the payload.
func Encode(claims Claims, secret []byte) (string, error) {
	payload := jwt.MapClaims{
		"id":       claims.UserID,
		"username": claims.Username,
	}
	if claims.IssuedAt != 0 {
		payload["iat"] = claims.IssuedAt
	}
	if claims.ExpiresAt != 0 {
		payload["exp"] = claims.ExpiresAt
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(secret)
}

// Decode extracts the claims without checking the signature. The result is
// untrusted and must only be used for local inspection, never for an
// authorization decision.
func Decode(raw string) (Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return Claims{}, ErrMalformed
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrMalformed
	}

	return fromMapClaims(claimsMap), nil
}

// VerifyAndDecode checks the token's structure and signature against the
// secret and returns the claims. It does not validate expiry; the caller
// decides what an expired credential means.
func VerifyAndDecode(raw string, secret []byte) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	parsed, err := parser.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return Claims{}, ErrMalformed
		}
		return Claims{}, ErrBadSignature
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrMalformed
	}

	return fromMapClaims(claimsMap), nil
}

func fromMapClaims(m jwt.MapClaims) Claims {
	claims := Claims{}
	claims.UserID, _ = m["id"].(string)
	claims.Username, _ = m["username"].(string)
	claims.IssuedAt = numericClaim(m, "iat")
	claims.ExpiresAt = numericClaim(m, "exp")
	return claims
}

func numericClaim(m jwt.MapClaims, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}
