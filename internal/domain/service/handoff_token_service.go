package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HandoffClaims binds a pickup handoff to one donation and the organization holding it.
type HandoffClaims struct {
	DonationID     uuid.UUID `json:"donation_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	jwt.RegisteredClaims
}

// HandoffTokenService issues and checks the signed codes a donor shows at pickup.
type HandoffTokenService interface {
	// Issue signs a token for the pair and returns it with its expiry.
	Issue(donationID, organizationID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Verify checks signature and expiry and returns the claims.
	Verify(token string) (*HandoffClaims, error)
}
