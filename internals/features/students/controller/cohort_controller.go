// internals/features/students/controller/cohort_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/students/dto"
	"magangku_backend/internals/features/students/service"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type CohortController struct {
	svc *service.CohortService
}

func NewCohortController(db *gorm.DB) *CohortController {
	return &CohortController{svc: service.NewCohortService(db)}
}

// GET /api/a/cohorts
func (ctl *CohortController) GetAll(c *fiber.Ctx) error {
	ctx := helperAuth.RequestScope(c)
	rows, err := ctl.svc.GetAll(ctx, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Daftar rombel", dto.NewCohortResponses(rows))
}

// POST /api/a/cohorts
func (ctl *CohortController) Create(c *fiber.Ctx) error {
	var req dto.CohortCreateRequest
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
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Rombel berhasil dibuat", dto.NewCohortResponse(m))
}

// PUT /api/a/cohorts/:id
func (ctl *CohortController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID rombel tidak valid")
	}
	var req dto.CohortUpdateRequest
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
	return helper.Success(c, "Rombel berhasil diperbarui", dto.NewCohortResponse(m))
}

// DELETE /api/a/cohorts/:id
func (ctl *CohortController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID rombel tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Rombel berhasil dihapus", nil)
}
