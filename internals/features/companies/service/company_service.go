// internals/features/companies/service/company_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/persistence"
)

type CompanyService struct {
	companies *persistence.Repo[model.CompanyModel]
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{
		companies: persistence.NewTenantRepo[model.CompanyModel](db, "company_id"),
	}
}

func (s *CompanyService) GetAll(ctx context.Context, tenantID *uuid.UUID) ([]model.CompanyModel, error) {
	return s.companies.All(ctx, tenantID)
}

func (s *CompanyService) List(ctx context.Context, tenantID *uuid.UUID, order string, limit, offset int) ([]model.CompanyModel, int64, error) {
	return s.companies.Page(ctx, tenantID, order, limit, offset)
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.CompanyModel, error) {
	return s.companies.ByID(ctx, id, tenantID)
}

func (s *CompanyService) Exists(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (bool, error) {
	return s.companies.Exists(ctx, id, tenantID)
}

func (s *CompanyService) Create(ctx context.Context, m *model.CompanyModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	return s.companies.Create(ctx, m)
}

func (s *CompanyService) Update(ctx context.Context, m *model.CompanyModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.companies.ByID(ctx, m.CompanyID, tenantID)
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
	return s.companies.Update(ctx, m, expectedVersion)
}

func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.companies.Delete(ctx, id, tenantID)
}

func (s *CompanyService) Restore(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.companies.Restore(ctx, id, tenantID)
}
