package service

import (
	"time"

	"notekeeper/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Identity returns the caller identity the claims were issued for.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{ID: c.UserID, Username: c.Username}
}

// TokenService defines the interface for issuing and verifying signed identity tokens.
type TokenService interface {
	// Issue signs a token for the given identity, valid for TTL().
	Issue(identity entity.Identity) (string, error)

	// Verify checks signature and expiry. It returns ErrAuthMissing for an empty
	// token and ErrAuthInvalid for anything that does not verify.
	Verify(tokenString string) (*Claims, error)

	// TTL returns the validity window of issued tokens.
	TTL() time.Duration
}
