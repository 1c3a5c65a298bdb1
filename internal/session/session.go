// File: internal/session/session.go
package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"service-market/internal/cache"

	"github.com/google/uuid"
)

// Sessions are opaque server-side references: the cookie carries a random
// token, Redis maps the token to an account id. Logout and self-delete
// revoke the token immediately, a stale token simply resolves to nothing.

const (
	CookieName = "session_token"
	keyPrefix  = "session:"

	// TTL bounds how long an idle session stays valid.
	TTL = 7 * 24 * time.Hour
)

var newToken = uuid.NewString

// Issue stores a fresh token for the account and returns it.
func Issue(ctx context.Context, c cache.Cache, accountID int) (string, error) {
	token := newToken()
	if err := c.Set(ctx, keyPrefix+token, accountID, TTL).Err(); err != nil {
		return "", fmt.Errorf("Issue: %w", err)
	}
	return token, nil
}

// Resolve maps a token back to an account id. Missing, expired or malformed
// tokens all resolve to (0, false); the caller is then anonymous.
func Resolve(ctx context.Context, c cache.Cache, token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	id, err := c.Get(ctx, keyPrefix+token).Int()
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Revoke invalidates a token. Revoking an unknown token is a no-op.
func Revoke(ctx context.Context, c cache.Cache, token string) error {
	if token == "" {
		return nil
	}
	if err := c.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("Revoke: %w", err)
	}
	return nil
}

// NewCookie wraps a token for the browser.
func NewCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie tells the browser to drop the session cookie.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
