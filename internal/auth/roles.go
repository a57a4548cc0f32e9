package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/adsite-service/pkg/util"
)

// RequireAuthenticated ensures a principal is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireStaff is the single authorization gate for every staff-only route.
// Non-staff callers get a FORBIDDEN error with no detail about the resource.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.IsStaff() {
			return apperrors.NewForbidden("staff role required")
		}
		return c.Next()
	}
}
