package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/privault/privault/internal/envelope"
)

// TokenGate validates the expiry of an externally issued JWT before every
// envelope operation. The engine never verifies the signature: the trust
// service that issued the token is also the one that will reject a forged
// one. The gate only keeps obviously dead sessions from producing network
// round trips and half-done operations.
type TokenGate struct {
	token string
	now   func() time.Time
}

func NewTokenGate(token string) *TokenGate {
	return &TokenGate{
		token: token,
		now:   time.Now,
	}
}

func (g *TokenGate) Check(_ context.Context) error {
	if g.token == "" {
		return ErrNoSessionToken
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(g.token, &claims); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSessionToken, err)
	}

	if claims.ExpiresAt != nil && g.now().After(claims.ExpiresAt.Time) {
		return fmt.Errorf("%w: at %s", ErrSessionExpired, claims.ExpiresAt.Format(time.RFC3339))
	}

	return nil
}

// staticGate is always open. Local mode has no session token: deriving the
// key from the passphrase at startup is the authentication, and a wrong
// passphrase surfaces as an authentication failure on the first decrypt.
type staticGate struct{}

func NewStaticGate() envelope.SessionGate {
	return staticGate{}
}

func (staticGate) Check(_ context.Context) error {
	return nil
}
