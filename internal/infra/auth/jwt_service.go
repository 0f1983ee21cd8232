// Package auth checks the HS256 tokens the service deals with: access tokens from the identity
// service and the handoff codes exchanged between donor and organization at pickup.
package auth

import (
	"time"

	"foodlink/config"
	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/service"
	"foodlink/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const handoffIssuer = "foodlink"

// jwtHandoffService is a concrete implementation of the HandoffTokenService interface using HS256 JWTs.
type jwtHandoffService struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

// NewJWTHandoffService is the constructor for jwtHandoffService.
func NewJWTHandoffService(cfg *config.Config, clock clockwork.Clock) (service.HandoffTokenService, error) {
	if cfg.Handoff == nil || cfg.Handoff.Secret == "" {
		return nil, errors.New("handoff secret must be provided")
	}

	return &jwtHandoffService{
		secret: []byte(cfg.Handoff.Secret),
		ttl:    cfg.Handoff.TTL,
		clock:  clock,
	}, nil
}

// Issue signs a handoff token for the donation and the organization holding it.
func (s *jwtHandoffService) Issue(donationID, organizationID uuid.UUID) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)

	claims := service.HandoffClaims{
		DonationID:     donationID,
		OrganizationID: organizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    handoffIssuer,
			Subject:   donationID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign handoff token")
	}

	return token, expiresAt, nil
}

// Verify checks signature, issuer and expiry.
func (s *jwtHandoffService) Verify(tokenString string) (*service.HandoffClaims, error) {
	claims := &service.HandoffClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(handoffIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid handoff token")
	}

	return claims, nil
}

// jwtAccessVerifier validates access tokens signed with the secret shared with the identity service.
type jwtAccessVerifier struct {
	secret []byte
	issuer string
	clock  clockwork.Clock
}

// NewJWTAccessVerifier is the constructor for jwtAccessVerifier.
func NewJWTAccessVerifier(cfg *config.Config, clock clockwork.Clock) (service.AccessTokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.AccessSecret == "" {
		return nil, errors.New("access token secret must be provided")
	}

	return &jwtAccessVerifier{
		secret: []byte(cfg.Auth.AccessSecret),
		issuer: cfg.Auth.Issuer,
		clock:  clock,
	}, nil
}

// Verify parses the token and keeps only roles this service knows about.
func (v *jwtAccessVerifier) Verify(tokenString string) (*service.AccessClaims, entity.Roles, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.clock.Now),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	claims := &service.AccessClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, options...); err != nil {
		return nil, nil, errors.Wrap(err, "invalid access token")
	}

	if claims.Subject == "" {
		return nil, nil, errors.New("access token has no subject")
	}

	return claims, entity.RolesFromStrings(claims.Roles), nil
}
