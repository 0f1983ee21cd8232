package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "foodlink/internal/delivery/context"
	"foodlink/internal/delivery/http/response"
	"foodlink/internal/domain/entity"
	"foodlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const keyRoles = "roles"

// AuthMiddleware authenticates bearer tokens issued by the identity service and enforces roles.
type AuthMiddleware struct {
	verifier service.AccessTokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.AccessTokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the access token and stores the caller on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, roles, err := m.verifier.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		actorID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid subject format in token")
		}

		deliverycontext.SetActorID(c, actorID)
		c.Set(keyRoles, roles)

		// Downstream logs carry the caller alongside the request ID.
		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("actor_id", actorID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole allows the request when the caller holds any of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := c.Get(keyRoles).(entity.Roles)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: role information missing")
			}

			for _, role := range roles {
				if held.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: role not allowed")
		}
	}
}

// GetActorID returns the authenticated caller ID.
func GetActorID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetActorID(c)
}

// HasRole reports whether the authenticated caller holds role.
func HasRole(c echo.Context, role entity.Role) bool {
	roles, ok := c.Get(keyRoles).(entity.Roles)

	return ok && roles.Contains(role)
}
