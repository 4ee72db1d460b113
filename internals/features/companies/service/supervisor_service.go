// internals/features/companies/service/supervisor_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/persistence"
)

type SupervisorService struct {
	supervisors *persistence.Repo[model.SupervisorModel]
	companies   *persistence.Repo[model.CompanyModel]
}

func NewSupervisorService(db *gorm.DB) *SupervisorService {
	return &SupervisorService{
		supervisors: persistence.NewTenantRepo[model.SupervisorModel](db, "supervisor_id"),
		companies:   persistence.NewTenantRepo[model.CompanyModel](db, "company_id"),
	}
}

func (s *SupervisorService) GetByCompany(ctx context.Context, companyID uuid.UUID, tenantID *uuid.UUID) ([]model.SupervisorModel, error) {
	var rows []model.SupervisorModel
	q := s.supervisors.Query(ctx, tenantID)
	if err := q.Where("supervisor_company_id = ?", companyID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SupervisorService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.SupervisorModel, error) {
	return s.supervisors.ByID(ctx, id, tenantID)
}

// Create: company yang dirujuk wajib satu school dengan supervisor.
func (s *SupervisorService) Create(ctx context.Context, m *model.SupervisorModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	ok, err := s.companies.Exists(ctx, m.SupervisorCompanyID, &tid)
	if err != nil {
		return err
	}
	if !ok {
		return persistence.ErrCrossTenant
	}
	return s.supervisors.Create(ctx, m)
}

// Update: supervisor tidak boleh pindah company lewat update.
func (s *SupervisorService) Update(ctx context.Context, m *model.SupervisorModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.supervisors.ByID(ctx, m.SupervisorID, tenantID)
	if err != nil {
		return err
	}
	m.SchoolID = existing.SchoolID
	m.SupervisorCompanyID = existing.SupervisorCompanyID
	m.CreatedAt = existing.CreatedAt
	m.CreatedBy = existing.CreatedBy
	if expectedVersion == nil {
		v := m.GetRowVersion()
		if v == 0 {
			v = existing.GetRowVersion()
		}
		expectedVersion = &v
	}
	return s.supervisors.Update(ctx, m, expectedVersion)
}

func (s *SupervisorService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.supervisors.Delete(ctx, id, tenantID)
}
