// internals/features/companies/controller/company_controller.go
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

var companySortWhitelist = map[string]string{
	"created_at": "created_at",
	"name":       "company_name",
	"city":       "company_city",
}

type CompanyController struct {
	svc *service.CompanyService
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{svc: service.NewCompanyService(db)}
}

// GET /api/a/companies
func (ctl *CompanyController) List(c *fiber.Ctx) error {
	ctx := helperAuth.RequestScope(c)
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(companySortWhitelist, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak dikenal")
	}

	rows, total, err := ctl.svc.List(ctx, nil, order, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Daftar DUDI", fiber.Map{
		"companies":  dto.NewCompanyResponses(rows),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/a/companies/:id
func (ctl *CompanyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID DUDI tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.svc.GetByID(ctx, id, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Detail DUDI", dto.NewCompanyResponse(m))
}

// POST /api/a/companies
func (ctl *CompanyController) Create(c *fiber.Ctx) error {
	var req dto.CompanyCreateRequest
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
	return helper.SuccessWithCode(c, fiber.StatusCreated, "DUDI berhasil dibuat", dto.NewCompanyResponse(m))
}

// PUT /api/a/companies/:id
func (ctl *CompanyController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID DUDI tidak valid")
	}
	var req dto.CompanyUpdateRequest
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
	return helper.Success(c, "DUDI berhasil diperbarui", dto.NewCompanyResponse(m))
}

// DELETE /api/a/companies/:id
func (ctl *CompanyController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID DUDI tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "DUDI berhasil dihapus", nil)
}

// POST /api/a/companies/:id/restore
func (ctl *CompanyController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID DUDI tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Restore(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "DUDI berhasil dipulihkan", nil)
}
