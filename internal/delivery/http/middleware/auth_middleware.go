package middleware

import (
	"net/http"
	"strings"

	"cofipos/internal/domain/entity"
	"cofipos/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// staffContextKey is where Authenticate stores the verified staff identity.
const staffContextKey = "staff"

// AuthMiddleware provides middleware for staff authentication.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the Bearer ID token with the identity provider and
// stores the resolved staff on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		staff, err := m.verifier.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(staffContextKey, staff)

		return next(c)
	}
}

// RequireVerifiedEmail rejects staff whose email the provider has not
// verified. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireVerifiedEmail(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		staff := StaffFromContext(c)
		if staff == nil {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: staff identity missing"})
		}
		if !staff.EmailVerified {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: email not verified"})
		}

		return next(c)
	}
}

// StaffFromContext returns the staff set by Authenticate, or nil on
// unauthenticated routes.
func StaffFromContext(c echo.Context) *entity.Staff {
	staff, ok := c.Get(staffContextKey).(*entity.Staff)
	if !ok {
		return nil
	}

	return staff
}
