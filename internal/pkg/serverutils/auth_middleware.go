package serverutils

import (
	"github.com/LionGx2004/cannatracker/internal/identity"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalsUserId      = "user_id"
	LocalsAccessToken = "access_token"
)

// AuthMiddleware extracts the bearer credential and exchanges it for a
// verified identity before any handler work runs. The raw token is kept in
// locals so downstream fetches can run under the caller's own authorization.
func AuthMiddleware(verifier identity.Verifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ErrUnauthenticated
		}
		token := authHeader[7:]

		userId, err := verifier.Verify(ctx.Context(), token)
		if err != nil {
			return ErrInvalidCredential
		}

		ctx.Locals(LocalsUserId, userId.String())
		ctx.Locals(LocalsAccessToken, token)
		return ctx.Next()
	}
}
