package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/democratise-ai/backend/apperr"
	"github.com/democratise-ai/backend/auth"
	"github.com/democratise-ai/backend/models"
	"github.com/democratise-ai/backend/store"
)

const userKey = "user"

// RequireAuth resolves the bearer token into a user record and stores
// it in the request locals. Every failure mode — missing header, bad
// or expired token, account no longer present — collapses into the
// same 401 so the response never reveals which part failed.
//
// Identity is re-resolved on every request; there is no caching.
func RequireAuth(tokens *auth.TokenService, rejectInactive bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			return apperr.ErrCredentials
		}

		email, err := tokens.Verify(raw)
		if err != nil {
			return apperr.ErrCredentials
		}

		user, err := store.GetUserByEmail(DB(c), email)
		if err != nil {
			return err
		}
		if user == nil {
			return apperr.ErrCredentials
		}
		if rejectInactive && !user.IsActive {
			return apperr.Conflict("Inactive user")
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user placed by RequireAuth.
func CurrentUser(c *fiber.Ctx) *models.User {
	return c.Locals(userKey).(*models.User)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
