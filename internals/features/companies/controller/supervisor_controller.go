// internals/features/companies/controller/supervisor_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/companies/dto"
	"magangku_backend/internals/features/companies/service"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type SupervisorController struct {
	svc *service.SupervisorService
}

func NewSupervisorController(db *gorm.DB) *SupervisorController {
	return &SupervisorController{svc: service.NewSupervisorService(db)}
}

// GET /api/a/companies/:companyId/supervisors
func (ctl *SupervisorController) GetByCompany(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID DUDI tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	rows, err := ctl.svc.GetByCompany(ctx, companyID, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Daftar pembimbing lapangan", dto.NewSupervisorResponses(rows))
}

// POST /api/a/companies/:companyId/supervisors
func (ctl *SupervisorController) Create(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID DUDI tidak valid")
	}
	var req dto.SupervisorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.SupervisorCompanyID = companyID
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m := req.ToModel()
	if err := ctl.svc.Create(ctx, m, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pembimbing lapangan berhasil dibuat", dto.NewSupervisorResponse(m))
}

// PUT /api/a/companies/:companyId/supervisors/:id
func (ctl *SupervisorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pembimbing tidak valid")
	}
	var req dto.SupervisorUpdateRequest
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
	return helper.Success(c, "Pembimbing lapangan berhasil diperbarui", dto.NewSupervisorResponse(m))
}

// DELETE /api/a/companies/:companyId/supervisors/:id
func (ctl *SupervisorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pembimbing tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Pembimbing lapangan berhasil dihapus", nil)
}
