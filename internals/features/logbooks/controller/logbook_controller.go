// internals/features/logbooks/controller/logbook_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/logbooks/dto"
	"magangku_backend/internals/features/logbooks/service"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type LogbookController struct {
	tasks       *service.LogbookTaskService
	entries     *service.LogbookEntryService
	evaluations *service.LogbookEvaluationService
}

func NewLogbookController(db *gorm.DB) *LogbookController {
	return &LogbookController{
		tasks:       service.NewLogbookTaskService(db),
		entries:     service.NewLogbookEntryService(db),
		evaluations: service.NewLogbookEvaluationService(db),
	}
}

// ===== Katalog tugas =====

// GET /api/a/logbook-tasks?active=1
func (ctl *LogbookController) GetTasks(c *fiber.Ctx) error {
	ctx := helperAuth.RequestScope(c)

	var err error
	var rows []dto.LogbookTaskResponse
	if c.Query("active") == "1" {
		ms, e := ctl.tasks.GetActive(ctx, nil)
		err, rows = e, dto.NewLogbookTaskResponses(ms)
	} else {
		ms, e := ctl.tasks.GetAll(ctx, nil)
		err, rows = e, dto.NewLogbookTaskResponses(ms)
	}
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Katalog tugas logbook", rows)
}

// POST /api/a/logbook-tasks
func (ctl *LogbookController) CreateTask(c *fiber.Ctx) error {
	var req dto.LogbookTaskCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m := req.ToModel()
	if err := ctl.tasks.Create(ctx, m, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tugas logbook berhasil dibuat", dto.NewLogbookTaskResponse(m))
}

// PUT /api/a/logbook-tasks/:id
func (ctl *LogbookController) UpdateTask(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}
	var req dto.LogbookTaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.tasks.GetByID(ctx, id, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	req.ApplyToModel(m)
	if err := ctl.tasks.Update(ctx, m, req.RowVersion, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Tugas logbook berhasil diperbarui", dto.NewLogbookTaskResponse(m))
}

// DELETE /api/a/logbook-tasks/:id
func (ctl *LogbookController) DeleteTask(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tugas tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.tasks.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Tugas logbook berhasil dihapus", nil)
}

// ===== Jurnal harian =====

// GET /api/a/placements/:placementId/logbook-entries
func (ctl *LogbookController) GetEntries(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	rows, err := ctl.entries.GetByPlacement(ctx, placementID, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Jurnal logbook", dto.NewLogbookEntryResponses(rows))
}

// POST /api/a/placements/:placementId/logbook-entries
func (ctl *LogbookController) CreateEntry(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	var req dto.LogbookEntryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.LogbookEntryPlacementID = placementID
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Daftar tugas tidak valid")
	}
	if err := ctl.entries.Create(ctx, m, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jurnal berhasil dicatat", dto.NewLogbookEntryResponse(m))
}

// PUT /api/a/placements/:placementId/logbook-entries/:id
func (ctl *LogbookController) UpdateEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jurnal tidak valid")
	}
	var req dto.LogbookEntryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m, err := ctl.entries.GetByID(ctx, id, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	if err := req.ApplyToModel(m); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Daftar tugas tidak valid")
	}
	if err := ctl.entries.Update(ctx, m, req.RowVersion, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Jurnal berhasil diperbarui", dto.NewLogbookEntryResponse(m))
}

// DELETE /api/a/placements/:placementId/logbook-entries/:id
func (ctl *LogbookController) DeleteEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jurnal tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.entries.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Jurnal berhasil dihapus", nil)
}

// ===== Penilaian akhir =====

// GET /api/a/placements/:placementId/logbook-evaluations
func (ctl *LogbookController) GetEvaluations(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	rows, err := ctl.evaluations.GetByPlacement(ctx, placementID, nil)
	if err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Penilaian logbook", dto.NewLogbookEvaluationResponses(rows))
}

// POST /api/a/placements/:placementId/logbook-evaluations
func (ctl *LogbookController) CreateEvaluation(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}
	var req dto.LogbookEvaluationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.LogbookEvaluationPlacementID = placementID
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.RequestScope(c)

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Rincian skor tidak valid")
	}
	if err := ctl.evaluations.Create(ctx, m, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penilaian berhasil dicatat", dto.NewLogbookEvaluationResponse(m))
}

// DELETE /api/a/placements/:placementId/logbook-evaluations/:id
func (ctl *LogbookController) DeleteEvaluation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID penilaian tidak valid")
	}
	ctx := helperAuth.RequestScope(c)

	if err := ctl.evaluations.Delete(ctx, id, nil); err != nil {
		return helper.FromServiceError(err)
	}
	return helper.Success(c, "Penilaian berhasil dihapus", nil)
}
