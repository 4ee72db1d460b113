// internals/features/logbooks/service/logbook_entry_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/logbooks/model"
	placementModel "magangku_backend/internals/features/placements/model"
	"magangku_backend/internals/persistence"
)

type LogbookEntryService struct {
	entries    *persistence.Repo[model.LogbookEntryModel]
	placements *persistence.Repo[placementModel.PlacementModel]
}

func NewLogbookEntryService(db *gorm.DB) *LogbookEntryService {
	return &LogbookEntryService{
		entries:    persistence.NewTenantRepo[model.LogbookEntryModel](db, "logbook_entry_id"),
		placements: persistence.NewTenantRepo[placementModel.PlacementModel](db, "placement_id"),
	}
}

func (s *LogbookEntryService) GetByPlacement(ctx context.Context, placementID uuid.UUID, tenantID *uuid.UUID) ([]model.LogbookEntryModel, error) {
	var rows []model.LogbookEntryModel
	if err := s.entries.Query(ctx, tenantID).
		Where("logbook_entry_placement_id = ?", placementID).
		Order("logbook_entry_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *LogbookEntryService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.LogbookEntryModel, error) {
	return s.entries.ByID(ctx, id, tenantID)
}

// Create: placement yang dirujuk wajib satu school dengan entry.
func (s *LogbookEntryService) Create(ctx context.Context, m *model.LogbookEntryModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	ok, err := s.placements.Exists(ctx, m.LogbookEntryPlacementID, &tid)
	if err != nil {
		return err
	}
	if !ok {
		return persistence.ErrCrossTenant
	}
	return s.entries.Create(ctx, m)
}

// Update: entry tidak bisa pindah placement.
func (s *LogbookEntryService) Update(ctx context.Context, m *model.LogbookEntryModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.entries.ByID(ctx, m.LogbookEntryID, tenantID)
	if err != nil {
		return err
	}
	m.SchoolID = existing.SchoolID
	m.LogbookEntryPlacementID = existing.LogbookEntryPlacementID
	m.CreatedAt = existing.CreatedAt
	m.CreatedBy = existing.CreatedBy
	if expectedVersion == nil {
		v := m.GetRowVersion()
		if v == 0 {
			v = existing.GetRowVersion()
		}
		expectedVersion = &v
	}
	return s.entries.Update(ctx, m, expectedVersion)
}

func (s *LogbookEntryService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.entries.Delete(ctx, id, tenantID)
}
