package provider

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "vault-user",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return token
}

func TestTokenGate_Check(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:  "live session",
			token: signedToken(t, now.Add(time.Hour)),
		},
		{
			name:    "expired session",
			token:   signedToken(t, now.Add(-time.Minute)),
			wantErr: ErrSessionExpired,
		},
		{
			name:    "missing token",
			token:   "",
			wantErr: ErrNoSessionToken,
		},
		{
			name:    "garbage token",
			token:   "definitely-not-a-jwt",
			wantErr: ErrInvalidSessionToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewTokenGate(tt.token)
			gate.now = func() time.Time { return now }

			err := gate.Check(ctx)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStaticGate_AlwaysOpen(t *testing.T) {
	assert.NoError(t, NewStaticGate().Check(context.Background()))
}
