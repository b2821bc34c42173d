package middleware

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// RequireRoles menolak request jika tipe user login tidak termasuk
// salah satu dari allowed.
func RequireRoles(allowed ...string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		userType := helperAuth.GetUserType(c)
		if userType == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if _, ok := set[userType]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.ErrForbidden)
		}
		return c.Next()
	}
}
