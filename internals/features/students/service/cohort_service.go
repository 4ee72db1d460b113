// internals/features/students/service/cohort_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

type CohortService struct {
	cohorts *persistence.Repo[model.CohortModel]
}

func NewCohortService(db *gorm.DB) *CohortService {
	return &CohortService{
		cohorts: persistence.NewTenantRepo[model.CohortModel](db, "cohort_id"),
	}
}

func (s *CohortService) GetAll(ctx context.Context, tenantID *uuid.UUID) ([]model.CohortModel, error) {
	return s.cohorts.All(ctx, tenantID)
}

func (s *CohortService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.CohortModel, error) {
	return s.cohorts.ByID(ctx, id, tenantID)
}

func (s *CohortService) Exists(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (bool, error) {
	return s.cohorts.Exists(ctx, id, tenantID)
}

func (s *CohortService) Create(ctx context.Context, m *model.CohortModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	return s.cohorts.Create(ctx, m)
}

func (s *CohortService) Update(ctx context.Context, m *model.CohortModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.cohorts.ByID(ctx, m.CohortID, tenantID)
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
	return s.cohorts.Update(ctx, m, expectedVersion)
}

func (s *CohortService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.cohorts.Delete(ctx, id, tenantID)
}
