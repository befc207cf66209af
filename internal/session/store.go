// Package session implements the server-side token-to-identity binding
// used to authenticate requests. Tokens are opaque, sessions expire a
// fixed duration after creation, and logout revokes them immediately.
package session

import (
	"context"
	"errors"
	"time"
)

// CookieName is the HTTP cookie carrying the session token.
const CookieName = "session_token"

// DefaultTTL is the session lifetime measured from creation. There is
// no sliding renewal.
const DefaultTTL = 24 * time.Hour

// ErrNoSession indicates the token is unknown or expired.
var ErrNoSession = errors.New("no valid session")

// Store maps opaque session tokens to user IDs with a fixed expiry.
type Store interface {
	// Create binds a fresh token to userID and returns the token.
	Create(ctx context.Context, userID string) (string, error)
	// Resolve returns the userID bound to token, or ErrNoSession.
	Resolve(ctx context.Context, token string) (string, error)
	// Destroy revokes the token. Destroying an unknown token is a no-op.
	Destroy(ctx context.Context, token string) error
}
