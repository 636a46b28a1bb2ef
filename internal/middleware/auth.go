package middleware

import (
	"strings"

	"github.com/cinefilos/cinefilos-api/internal/auth"
	"github.com/cinefilos/cinefilos-api/internal/types"
	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// RequireAuth validates the bearer credential and stores its claims in the
// request context. The token is read from the http-only "token" cookie or,
// failing that, from the Authorization header.
func RequireAuth(tm *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := authenticate(c, tm)
		if err != nil {
			return err
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireAdmin validates the credential and additionally requires the admin
// flag. Admin-only routes are gated up front (shape "a"): a non-admin gets an
// authorization error, never a silent not-found.
func RequireAdmin(tm *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := authenticate(c, tm)
		if err != nil {
			return err
		}
		if !claims.Admin {
			return types.NewCustomError(fiber.StatusForbidden,
				"Acesso negado: apenas administradores.", "ADMIN_ONLY")
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// Claims returns the authenticated claims stored by RequireAuth/RequireAdmin,
// or nil on unauthenticated routes.
func Claims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(claimsKey).(*auth.Claims)
	return claims
}

func authenticate(c *fiber.Ctx, tm *auth.TokenManager) (*auth.Claims, error) {
	token := c.Cookies("token")
	if token == "" {
		header := c.Get(fiber.HeaderAuthorization)
		if after, ok := strings.CutPrefix(header, "Bearer "); ok {
			token = after
		}
	}
	if token == "" {
		return nil, types.NewCustomError(fiber.StatusUnauthorized,
			"Token não fornecido.", "TOKEN_MISSING")
	}

	claims, err := tm.Validate(token)
	if err != nil {
		return nil, types.NewCustomError(fiber.StatusUnauthorized,
			"Token inválido ou expirado.", "TOKEN_INVALID")
	}
	return claims, nil
}
