// internals/features/schools/controller/school_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/schools/dto"
	"magangku_backend/internals/features/schools/service"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type SchoolController struct {
	svc *service.SchoolService
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{svc: service.NewSchoolService(db)}
}

// GET /api/a/schools — lintas tenant, khusus owner.
func (ctl *SchoolController) GetAll(c *fiber.Ctx) error {
	ctx := helperAuth.RequestScope(c)
	rows, err := ctl.svc.GetAll(ctx)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Daftar sekolah", dto.NewSchoolResponses(rows))
}

// GET /api/a/schools/:id
func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.svc.GetByID(ctx, id)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Detail sekolah", dto.NewSchoolResponse(m))
}

// GET /api/u/schools/slug/:slug — untuk landing per sekolah.
func (ctl *SchoolController) GetBySlug(c *fiber.Ctx) error {
	ctx := helperAuth.AnonymousScope(c, "public")
	m, err := ctl.svc.GetBySlug(ctx, c.Params("slug"))
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Detail sekolah", dto.NewSchoolResponse(m))
}

// POST /api/a/schools
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.SchoolCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m := req.ToModel()
	if err := ctl.svc.Create(ctx, m); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sekolah berhasil dibuat", dto.NewSchoolResponse(m))
}

// PUT /api/a/schools/:id
func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}
	var req dto.SchoolUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.svc.GetByID(ctx, id)
	if err != nil {
		return helper.FromServiceError(err)
	}
	req.ApplyToModel(m)
	if err := ctl.svc.Update(ctx, m, req.RowVersion); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Sekolah berhasil diperbarui", dto.NewSchoolResponse(m))
}

// DELETE /api/a/schools/:id
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Delete(ctx, id); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Sekolah berhasil dihapus", nil)
}

// POST /api/a/schools/:id/restore
func (ctl *SchoolController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sekolah tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Restore(ctx, id); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Sekolah berhasil dipulihkan", nil)
}
