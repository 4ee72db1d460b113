// internals/features/students/controller/student_controller.go
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

var studentSortWhitelist = map[string]string{
	"created_at": "created_at",
	"name":       "student_full_name",
	"nisn":       "student_nisn",
}

type StudentController struct {
	svc *service.StudentService
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{svc: service.NewStudentService(db)}
}

// GET /api/a/students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	ctx := helperAuth.RequestScope(c)
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, err := p.SafeOrderClause(studentSortWhitelist, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak dikenal")
	}

	rows, total, err := ctl.svc.List(ctx, nil, order, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Daftar siswa", fiber.Map{
		"students":   dto.NewStudentResponses(rows),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/a/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.svc.GetByID(ctx, id, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Detail siswa", dto.NewStudentResponse(m))
}

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
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
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil dibuat", dto.NewStudentResponse(m))
}

// PUT /api/a/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	var req dto.StudentUpdateRequest
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
	return helper.Success(c, "Siswa berhasil diperbarui", dto.NewStudentResponse(m))
}

// DELETE /api/a/students/:id — soft delete, idempoten.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Siswa berhasil dihapus", nil)
}

// POST /api/a/students/:id/restore
func (ctl *StudentController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.svc.Restore(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Siswa berhasil dipulihkan", nil)
}
