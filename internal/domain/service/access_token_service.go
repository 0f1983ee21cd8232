package service

import (
	"foodlink/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims of an access token minted by the identity service.
// Subject is the donor ID for donors and the organization ID for organization members.
type AccessClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// AccessTokenVerifier validates bearer tokens presented to the HTTP API.
type AccessTokenVerifier interface {
	// Verify checks signature, issuer and expiry and returns the claims with their valid roles.
	Verify(token string) (*AccessClaims, entity.Roles, error)
}
