package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID, role domain.Role) (string, error)

	// ValidateToken validates an access token and extracts its claims.
	// Returns ErrExpiredToken, ErrInvalidToken or ErrWrongTokenType on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed refresh token for the user.
	// Refresh tokens have a longer lifetime and are exchanged for new
	// access tokens.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID, role domain.Role) (string, error)

	// ValidateRefreshToken validates a refresh token and extracts its claims.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims carries the application-specific fields extracted from a validated
// token.
type Claims struct {
	// UserID is the user the token was issued for.
	UserID uuid.UUID

	// Role is the user's role at issuance time, used for authorization
	// checks without a database round trip.
	Role domain.Role

	// TokenType indicates the purpose of the token ("access" or "refresh").
	TokenType string
}
