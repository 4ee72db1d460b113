// internals/middlewares/auth/role_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "magangku_backend/internals/helpers/auth"
)

// rolesFromLocals menormalkan claim roles ([]string / []any / string).
func rolesFromLocals(c *fiber.Ctx) []string {
	v := c.Locals(helperAuth.LocRoles)
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		return []string{strings.TrimSpace(t)}
	}
	return nil
}

// OnlyRolesSlice: gate role eksplisit, deny-by-default.
// Token tanpa role ATAU daftar allowed kosong = selalu ditolak —
// jangan pernah fallback ke "izinkan" saat konfigurasi kosong.
func OnlyRolesSlice(customForbiddenMessage string, allowedRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles := rolesFromLocals(c)
		if len(roles) == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			for _, r := range roles {
				if strings.EqualFold(r, allowed) {
					return c.Next()
				}
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// OnlyRoles: shortcut variadic
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return OnlyRolesSlice(customMessage, roles)
}
