// internals/helpers/auth/scope.go
package helperAuth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"magangku_backend/internals/persistence"
)

// Kunci Locals yang dihydrate middleware AuthJWT
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocSchoolID = "school_id"
	LocRoles    = "roles"
)

func strLocal(c *fiber.Ctx, key string) string {
	if v := c.Locals(key); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// GetSchoolIDFromToken: tenant aktif dari claims JWT.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s := strLocal(c, LocSchoolID)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format school_id tidak valid di token")
	}
	return id, nil
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s := strLocal(c, LocUserID)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format user_id tidak valid di token")
	}
	return id, nil
}

func GetUsernameFromToken(c *fiber.Ctx) string {
	return strLocal(c, LocUserName)
}

// RequestScope: context untuk gateway persistence — bawa actor + tenant
// dari Locals. Dipanggil di awal tiap handler staff.
func RequestScope(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if name := GetUsernameFromToken(c); name != "" {
		ctx = persistence.WithActor(ctx, name)
	}
	if s := strLocal(c, LocSchoolID); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			ctx = persistence.WithSchoolID(ctx, id)
		}
	}
	return ctx
}

// AnonymousScope: context untuk jalur publik (pengisi form via token) —
// tidak ada tenant; actor dicatat sebagai pihak eksternal.
func AnonymousScope(c *fiber.Ctx, actor string) context.Context {
	ctx := c.UserContext()
	if actor != "" {
		ctx = persistence.WithActor(ctx, actor)
	}
	return ctx
}
