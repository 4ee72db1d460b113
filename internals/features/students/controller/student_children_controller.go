// internals/features/students/controller/student_children_controller.go
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

/* ===============================
   Anak-anak student: kontak darurat, kondisi medis, riwayat kerja.
   Semua nested di bawah /students/:studentId/...
=================================*/

type StudentChildrenController struct {
	contacts   *service.EmergencyContactService
	conditions *service.MedicalConditionService
	histories  *service.WorkHistoryService
}

func NewStudentChildrenController(db *gorm.DB) *StudentChildrenController {
	return &StudentChildrenController{
		contacts:   service.NewEmergencyContactService(db),
		conditions: service.NewMedicalConditionService(db),
		histories:  service.NewWorkHistoryService(db),
	}
}

func parseStudentID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("studentId"))
}

// ===== Kontak darurat =====

// GET /api/a/students/:studentId/emergency-contacts
func (ctl *StudentChildrenController) GetEmergencyContacts(c *fiber.Ctx) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	rows, err := ctl.contacts.GetByStudent(ctx, studentID, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Kontak darurat siswa", dto.NewEmergencyContactResponses(rows))
}

// POST /api/a/students/:studentId/emergency-contacts
func (ctl *StudentChildrenController) CreateEmergencyContact(c *fiber.Ctx) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	var req dto.EmergencyContactCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.EmergencyContactStudentID = studentID
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m := req.ToModel()
	if err := ctl.contacts.Create(ctx, m, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kontak darurat berhasil dibuat", dto.NewEmergencyContactResponse(m))
}

// PUT /api/a/students/:studentId/emergency-contacts/:id
func (ctl *StudentChildrenController) UpdateEmergencyContact(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kontak tidak valid")
	}
	var req dto.EmergencyContactUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.contacts.GetByID(ctx, id, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	req.ApplyToModel(m)
	if err := ctl.contacts.Update(ctx, m, req.RowVersion, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Kontak darurat berhasil diperbarui", dto.NewEmergencyContactResponse(m))
}

// DELETE /api/a/students/:studentId/emergency-contacts/:id
func (ctl *StudentChildrenController) DeleteEmergencyContact(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kontak tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.contacts.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Kontak darurat berhasil dihapus", nil)
}

// ===== Kondisi medis =====

// GET /api/a/students/:studentId/medical-conditions
func (ctl *StudentChildrenController) GetMedicalConditions(c *fiber.Ctx) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	rows, err := ctl.conditions.GetByStudent(ctx, studentID, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Kondisi medis siswa", dto.NewMedicalConditionResponses(rows))
}

// POST /api/a/students/:studentId/medical-conditions
func (ctl *StudentChildrenController) CreateMedicalCondition(c *fiber.Ctx) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	var req dto.MedicalConditionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.StudentMedicalConditionStudentID = studentID
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m := req.ToModel()
	if err := ctl.conditions.Create(ctx, m, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kondisi medis berhasil dicatat", dto.NewMedicalConditionResponse(m))
}

// DELETE /api/a/students/:studentId/medical-conditions/:id
func (ctl *StudentChildrenController) DeleteMedicalCondition(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kondisi tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.conditions.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Kondisi medis berhasil dihapus", nil)
}

// ===== Riwayat kerja =====

// GET /api/a/students/:studentId/work-histories
func (ctl *StudentChildrenController) GetWorkHistories(c *fiber.Ctx) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	rows, err := ctl.histories.GetByStudent(ctx, studentID, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Riwayat kerja siswa", dto.NewWorkHistoryResponses(rows))
}

// POST /api/a/students/:studentId/work-histories
func (ctl *StudentChildrenController) CreateWorkHistory(c *fiber.Ctx) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}
	var req dto.WorkHistoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.StudentWorkHistoryStudentID = studentID
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m := req.ToModel()
	if err := ctl.histories.Create(ctx, m, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Riwayat kerja berhasil dicatat", dto.NewWorkHistoryResponse(m))
}

// PUT /api/a/students/:studentId/work-histories/:id
func (ctl *StudentChildrenController) UpdateWorkHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID riwayat tidak valid")
	}
	var req dto.WorkHistoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.histories.GetByID(ctx, id, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	req.ApplyToModel(m)
	if err := ctl.histories.Update(ctx, m, req.RowVersion, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Riwayat kerja berhasil diperbarui", dto.NewWorkHistoryResponse(m))
}

// DELETE /api/a/students/:studentId/work-histories/:id
func (ctl *StudentChildrenController) DeleteWorkHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID riwayat tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.histories.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Riwayat kerja berhasil dihapus", nil)
}
