// internals/features/logbooks/service/logbook_evaluation_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/logbooks/model"
	placementModel "magangku_backend/internals/features/placements/model"
	"magangku_backend/internals/persistence"
)

type LogbookEvaluationService struct {
	evaluations *persistence.Repo[model.LogbookEvaluationModel]
	placements  *persistence.Repo[placementModel.PlacementModel]
}

func NewLogbookEvaluationService(db *gorm.DB) *LogbookEvaluationService {
	return &LogbookEvaluationService{
		evaluations: persistence.NewTenantRepo[model.LogbookEvaluationModel](db, "logbook_evaluation_id"),
		placements:  persistence.NewTenantRepo[placementModel.PlacementModel](db, "placement_id"),
	}
}

func (s *LogbookEvaluationService) GetByPlacement(ctx context.Context, placementID uuid.UUID, tenantID *uuid.UUID) ([]model.LogbookEvaluationModel, error) {
	var rows []model.LogbookEvaluationModel
	if err := s.evaluations.Query(ctx, tenantID).
		Where("logbook_evaluation_placement_id = ?", placementID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *LogbookEvaluationService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.LogbookEvaluationModel, error) {
	return s.evaluations.ByID(ctx, id, tenantID)
}

func (s *LogbookEvaluationService) Create(ctx context.Context, m *model.LogbookEvaluationModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	ok, err := s.placements.Exists(ctx, m.LogbookEvaluationPlacementID, &tid)
	if err != nil {
		return err
	}
	if !ok {
		return persistence.ErrCrossTenant
	}
	return s.evaluations.Create(ctx, m)
}

func (s *LogbookEvaluationService) Update(ctx context.Context, m *model.LogbookEvaluationModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.evaluations.ByID(ctx, m.LogbookEvaluationID, tenantID)
	if err != nil {
		return err
	}
	m.SchoolID = existing.SchoolID
	m.LogbookEvaluationPlacementID = existing.LogbookEvaluationPlacementID
	m.CreatedAt = existing.CreatedAt
	m.CreatedBy = existing.CreatedBy
	if expectedVersion == nil {
		v := m.GetRowVersion()
		if v == 0 {
			v = existing.GetRowVersion()
		}
		expectedVersion = &v
	}
	return s.evaluations.Update(ctx, m, expectedVersion)
}

func (s *LogbookEvaluationService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.evaluations.Delete(ctx, id, tenantID)
}
