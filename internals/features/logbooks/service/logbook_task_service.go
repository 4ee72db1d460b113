// internals/features/logbooks/service/logbook_task_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/logbooks/model"
	"magangku_backend/internals/persistence"
)

type LogbookTaskService struct {
	tasks *persistence.Repo[model.LogbookTaskModel]
}

func NewLogbookTaskService(db *gorm.DB) *LogbookTaskService {
	return &LogbookTaskService{
		tasks: persistence.NewTenantRepo[model.LogbookTaskModel](db, "logbook_task_id"),
	}
}

func (s *LogbookTaskService) GetAll(ctx context.Context, tenantID *uuid.UUID) ([]model.LogbookTaskModel, error) {
	return s.tasks.All(ctx, tenantID)
}

func (s *LogbookTaskService) GetActive(ctx context.Context, tenantID *uuid.UUID) ([]model.LogbookTaskModel, error) {
	var rows []model.LogbookTaskModel
	if err := s.tasks.Query(ctx, tenantID).
		Where("logbook_task_is_active = ?", true).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *LogbookTaskService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.LogbookTaskModel, error) {
	return s.tasks.ByID(ctx, id, tenantID)
}

func (s *LogbookTaskService) Create(ctx context.Context, m *model.LogbookTaskModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	return s.tasks.Create(ctx, m)
}

func (s *LogbookTaskService) Update(ctx context.Context, m *model.LogbookTaskModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.tasks.ByID(ctx, m.LogbookTaskID, tenantID)
	if err != nil {
		return err
	}
	m.SchoolID = existing.SchoolID
	m.CreatedAt = existing.CreatedAt
	m.CreatedBy = existing.CreatedBy
	if expectedVersion == nil {
		v := m.GetRowVersion()
		if v == 0 {
			v = existing.GetRowVersion()
		}
		expectedVersion = &v
	}
	return s.tasks.Update(ctx, m, expectedVersion)
}

func (s *LogbookTaskService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.tasks.Delete(ctx, id, tenantID)
}
