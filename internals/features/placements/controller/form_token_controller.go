// internals/features/placements/controller/form_token_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/configs"
	"magangku_backend/internals/features/placements/dto"
	"magangku_backend/internals/features/placements/service"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

/* ===============================
   Kelola link form eksternal (sisi staff).
   Token plaintext hanya muncul di response generate/resend — dari sini
   staff menyalin URL dan mengirimkannya sendiri (email di luar sistem).
=================================*/

type FormTokenController struct {
	svc *service.FormTokenService
}

func NewFormTokenController(db *gorm.DB) *FormTokenController {
	return &FormTokenController{svc: service.NewFormTokenService(db)}
}

// GET /api/a/placements/:placementId/form-tokens
func (ctl *FormTokenController) GetByPlacement(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	rows, err := ctl.svc.GetByPlacement(ctx, placementID, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Daftar link form", dto.NewFormTokenResponses(rows, configs.PublicBaseURL))
}

// POST /api/a/placements/:placementId/form-tokens
func (ctl *FormTokenController) Generate(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	var req dto.FormTokenGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.FormTokenPlacementID = placementID
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	tok, err := ctl.svc.Generate(ctx, placementID, req.FormTokenFormType, req.FormTokenEmail, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Link form berhasil dibuat", dto.NewFormTokenResponse(tok, configs.PublicBaseURL))
}

// POST /api/a/placements/:placementId/form-tokens/resend
// Revoke semua link aktif sejenis, lalu terbitkan link baru.
func (ctl *FormTokenController) Resend(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	var req dto.FormTokenGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.FormTokenPlacementID = placementID
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	tok, err := ctl.svc.Resend(ctx, placementID, req.FormTokenFormType, req.FormTokenEmail, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Link form lama dicabut, link baru diterbitkan", dto.NewFormTokenResponse(tok, configs.PublicBaseURL))
}

// DELETE /api/a/placements/:placementId/form-tokens/:id
func (ctl *FormTokenController) Revoke(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID token tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Revoke(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Link form berhasil dicabut", nil)
}
