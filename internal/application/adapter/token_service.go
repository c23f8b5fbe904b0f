// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is the access/refresh pair issued on login and register.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims is the identity a validated JWT carries.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and validates the JWT pairs backing API sessions.
// Refresh tokens are tracked server side so logout can revoke them.
type TokenService interface {
	// GenerateTokenPair issues a fresh pair for the user. rememberMe
	// extends the refresh token lifetime.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*TokenPair, error)

	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken parses and verifies a refresh token.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken revokes a single refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// InvalidateAllUserTokens revokes every refresh token the user holds.
	InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error

	// IsRefreshTokenValid reports whether a refresh token is still usable.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}

// PasswordResetToken is a single-use token mailed to the user during the
// forgot-password flow.
type PasswordResetToken struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// PasswordResetTokenService manages the forgot/reset password tokens.
type PasswordResetTokenService interface {
	// GenerateResetToken issues a new reset token for the user.
	GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*PasswordResetToken, error)

	// ValidateResetToken checks a reset token and returns its identity.
	// Expired and already-used tokens are rejected.
	ValidateResetToken(ctx context.Context, token string) (*PasswordResetToken, error)

	// InvalidateResetToken marks a reset token as used.
	InvalidateResetToken(ctx context.Context, token string) error
}
