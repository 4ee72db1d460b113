// internals/features/placements/controller/placement_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/placements/dto"
	"magangku_backend/internals/features/placements/service"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

var placementSortWhitelist = map[string]string{
	"created_at": "created_at",
	"status":     "placement_status",
	"start_date": "placement_start_date",
}

type PlacementController struct {
	svc *service.PlacementService
}

func NewPlacementController(db *gorm.DB) *PlacementController {
	return &PlacementController{svc: service.NewPlacementService(db)}
}

// GET /api/a/placements
func (ctl *PlacementController) List(c *fiber.Ctx) error {
	ctx := helperAuth.RequestScope(c)
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(placementSortWhitelist, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak dikenal")
	}

	rows, total, err := ctl.svc.List(ctx, nil, order, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Daftar penempatan", fiber.Map{
		"placements": dto.NewPlacementResponses(rows),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/a/placements/:id
func (ctl *PlacementController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.svc.GetByID(ctx, id, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Detail penempatan", dto.NewPlacementResponse(m))
}

// POST /api/a/placements
func (ctl *PlacementController) Create(c *fiber.Ctx) error {
	var req dto.PlacementCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m := req.ToModel()
	if err := ctl.svc.Create(ctx, m, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penempatan berhasil dibuat", dto.NewPlacementResponse(m))
}

// PUT /api/a/placements/:id
func (ctl *PlacementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	var req dto.PlacementUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.svc.GetByID(ctx, id, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	req.ApplyToModel(m)
	if err := ctl.svc.Update(ctx, m, req.RowVersion, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Penempatan berhasil diperbarui", dto.NewPlacementResponse(m))
}

// DELETE /api/a/placements/:id
func (ctl *PlacementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Penempatan berhasil dihapus", nil)
}

// POST /api/a/placements/:id/restore
func (ctl *PlacementController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Restore(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Penempatan berhasil dipulihkan", nil)
}
