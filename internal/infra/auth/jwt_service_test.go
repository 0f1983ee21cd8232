package auth

import (
	"testing"
	"time"

	"foodlink/config"
	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandoffConfig(secret string) *config.Config {
	return &config.Config{
		Handoff: &config.HandoffConfig{
			Secret: secret,
			TTL:    2 * time.Hour,
		},
	}
}

func TestJWTHandoffService_IssueAndVerify(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	svc, err := NewJWTHandoffService(newHandoffConfig("test_handoff_secret_key_very_long"), clock)
	require.NoError(t, err)

	donationID := uuid.New()
	organizationID := uuid.New()

	token, expiresAt, err := svc.Issue(donationID, organizationID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.Now().Add(2*time.Hour), expiresAt)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, donationID, claims.DonationID)
	assert.Equal(t, organizationID, claims.OrganizationID)
}

func TestJWTHandoffService_Expired(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	svc, err := NewJWTHandoffService(newHandoffConfig("test_handoff_secret_key_very_long"), clock)
	require.NoError(t, err)

	token, _, err := svc.Issue(uuid.New(), uuid.New())
	require.NoError(t, err)

	clock.Advance(3 * time.Hour)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTHandoffService_WrongSecret(t *testing.T) {
	clock := clockwork.NewFakeClock()
	issuer, err := NewJWTHandoffService(newHandoffConfig("first_secret_key_for_testing"), clock)
	require.NoError(t, err)
	verifier, err := NewJWTHandoffService(newHandoffConfig("second_secret_key_for_testing"), clock)
	require.NoError(t, err)

	token, _, err := issuer.Issue(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestJWTHandoffService_RejectsOtherAlgorithms(t *testing.T) {
	clock := clockwork.NewFakeClock()
	svc, err := NewJWTHandoffService(newHandoffConfig("test_handoff_secret_key_very_long"), clock)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    handoffIssuer,
		ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
	}).SignedString([]byte("test_handoff_secret_key_very_long"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestNewJWTHandoffService_RequiresSecret(t *testing.T) {
	_, err := NewJWTHandoffService(newHandoffConfig(""), clockwork.NewFakeClock())
	assert.Error(t, err)
}

func newAccessConfig(secret, issuer string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			AccessSecret: secret,
			Issuer:       issuer,
		},
	}
}

func signAccessToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTAccessVerifier_Verify(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	verifier, err := NewJWTAccessVerifier(newAccessConfig("identity_shared_secret", "identity"), clock)
	require.NoError(t, err)

	subject := uuid.New().String()
	token := signAccessToken(t, "identity_shared_secret", &service.AccessClaims{
		Roles: []string{"organization", "superuser"},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "identity",
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(15 * time.Minute)),
		},
	})

	claims, roles, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, entity.Roles{entity.RoleOrganization}, roles)
}

func TestJWTAccessVerifier_Rejects(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	verifier, err := NewJWTAccessVerifier(newAccessConfig("identity_shared_secret", "identity"), clock)
	require.NoError(t, err)

	valid := jwt.RegisteredClaims{
		Issuer:    "identity",
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(clock.Now().Add(15 * time.Minute)),
	}

	wrongIssuer := valid
	wrongIssuer.Issuer = "elsewhere"

	noSubject := valid
	noSubject.Subject = ""

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(clock.Now().Add(-time.Minute))

	tests := map[string]string{
		"wrong secret": signAccessToken(t, "another_secret", &service.AccessClaims{RegisteredClaims: valid}),
		"wrong issuer": signAccessToken(t, "identity_shared_secret", &service.AccessClaims{RegisteredClaims: wrongIssuer}),
		"no subject":   signAccessToken(t, "identity_shared_secret", &service.AccessClaims{RegisteredClaims: noSubject}),
		"expired":      signAccessToken(t, "identity_shared_secret", &service.AccessClaims{RegisteredClaims: expired}),
		"garbage":      "not-a-token",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := verifier.Verify(token)
			require.Error(t, err)
		})
	}
}

func TestNewJWTAccessVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTAccessVerifier(&config.Config{}, clockwork.NewFakeClock())
	require.Error(t, err)
}
