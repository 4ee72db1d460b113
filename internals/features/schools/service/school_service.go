// internals/features/schools/service/school_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/schools/model"
	"magangku_backend/internals/persistence"
)

// SchoolService: schools = tabel tenant itu sendiri, jadi repo-nya global
// (tidak di-scope school_id).
type SchoolService struct {
	schools *persistence.Repo[model.SchoolModel]
}

func NewSchoolService(db *gorm.DB) *SchoolService {
	return &SchoolService{
		schools: persistence.NewRepo[model.SchoolModel](db, "school_id"),
	}
}

func (s *SchoolService) GetAll(ctx context.Context) ([]model.SchoolModel, error) {
	return s.schools.All(ctx, nil)
}

func (s *SchoolService) GetByID(ctx context.Context, id uuid.UUID) (*model.SchoolModel, error) {
	return s.schools.ByID(ctx, id, nil)
}

func (s *SchoolService) GetBySlug(ctx context.Context, slug string) (*model.SchoolModel, error) {
	var m model.SchoolModel
	err := s.schools.Query(ctx, nil).Where("school_slug = ?", slug).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, persistence.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *SchoolService) Create(ctx context.Context, m *model.SchoolModel) error {
	return s.schools.Create(ctx, m)
}

func (s *SchoolService) Update(ctx context.Context, m *model.SchoolModel, expectedVersion *int64) error {
	existing, err := s.schools.ByID(ctx, m.SchoolID, nil)
	if err != nil {
		return err
	}
	m.CreatedAt = existing.CreatedAt
	m.CreatedBy = existing.CreatedBy
	if expectedVersion == nil {
		v := m.GetRowVersion()
		if v == 0 {
			v = existing.GetRowVersion()
		}
		expectedVersion = &v
	}
	return s.schools.Update(ctx, m, expectedVersion)
}

func (s *SchoolService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.schools.Delete(ctx, id, nil)
}

func (s *SchoolService) Restore(ctx context.Context, id uuid.UUID) error {
	return s.schools.Restore(ctx, id, nil)
}
