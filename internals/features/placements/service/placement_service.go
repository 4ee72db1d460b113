// internals/features/placements/service/placement_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	companyModel "magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/features/placements/model"
	studentModel "magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

type PlacementService struct {
	placements  *persistence.Repo[model.PlacementModel]
	students    *persistence.Repo[studentModel.StudentModel]
	companies   *persistence.Repo[companyModel.CompanyModel]
	supervisors *persistence.Repo[companyModel.SupervisorModel]
}

func NewPlacementService(db *gorm.DB) *PlacementService {
	return &PlacementService{
		placements:  persistence.NewTenantRepo[model.PlacementModel](db, "placement_id"),
		students:    persistence.NewTenantRepo[studentModel.StudentModel](db, "student_id"),
		companies:   persistence.NewTenantRepo[companyModel.CompanyModel](db, "company_id"),
		supervisors: persistence.NewTenantRepo[companyModel.SupervisorModel](db, "supervisor_id"),
	}
}

func (s *PlacementService) GetAll(ctx context.Context, tenantID *uuid.UUID) ([]model.PlacementModel, error) {
	return s.placements.All(ctx, tenantID)
}

func (s *PlacementService) List(ctx context.Context, tenantID *uuid.UUID, order string, limit, offset int) ([]model.PlacementModel, int64, error) {
	return s.placements.Page(ctx, tenantID, order, limit, offset)
}

func (s *PlacementService) GetByStudent(ctx context.Context, studentID uuid.UUID, tenantID *uuid.UUID) ([]model.PlacementModel, error) {
	var rows []model.PlacementModel
	q := s.placements.Query(ctx, tenantID)
	if err := q.Where("placement_student_id = ?", studentID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PlacementService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.PlacementModel, error) {
	return s.placements.ByID(ctx, id, tenantID)
}

func (s *PlacementService) Exists(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (bool, error) {
	return s.placements.Exists(ctx, id, tenantID)
}

// validateRefs: semua relasi placement wajib satu school. Supervisor juga
// harus menginduk ke company yang sama dengan placement.
func (s *PlacementService) validateRefs(ctx context.Context, m *model.PlacementModel, tid uuid.UUID) error {
	ok, err := s.students.Exists(ctx, m.PlacementStudentID, &tid)
	if err != nil {
		return err
	}
	if !ok {
		return persistence.ErrCrossTenant
	}
	if m.PlacementCompanyID != nil {
		ok, err := s.companies.Exists(ctx, *m.PlacementCompanyID, &tid)
		if err != nil {
			return err
		}
		if !ok {
			return persistence.ErrCrossTenant
		}
	}
	if m.PlacementSupervisorID != nil {
		sup, err := s.supervisors.ByID(ctx, *m.PlacementSupervisorID, &tid)
		if err != nil {
			if err == persistence.ErrNotFound {
				return persistence.ErrCrossTenant
			}
			return err
		}
		if m.PlacementCompanyID == nil || sup.SupervisorCompanyID != *m.PlacementCompanyID {
			return persistence.ErrCrossTenant
		}
	}
	return nil
}

func (s *PlacementService) Create(ctx context.Context, m *model.PlacementModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	if err := s.validateRefs(ctx, m, tid); err != nil {
		return err
	}
	return s.placements.Create(ctx, m)
}

// Update: jalur staff. Siswa, status, dan stempel submit tidak bisa diubah
// dari sini — status hanya digerakkan orchestrator form.
func (s *PlacementService) Update(ctx context.Context, m *model.PlacementModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.placements.ByID(ctx, m.PlacementID, tenantID)
	if err != nil {
		return err
	}
	m.SchoolID = existing.SchoolID
	m.PlacementStudentID = existing.PlacementStudentID
	m.PlacementStatus = existing.PlacementStatus
	m.PlacementEmployerSubmittedAt = existing.PlacementEmployerSubmittedAt
	m.PlacementParentSubmittedAt = existing.PlacementParentSubmittedAt
	m.CreatedAt = existing.CreatedAt
	m.CreatedBy = existing.CreatedBy
	if err := s.validateRefs(ctx, m, existing.SchoolID); err != nil {
		return err
	}
	if expectedVersion == nil {
		v := m.GetRowVersion()
		if v == 0 {
			v = existing.GetRowVersion()
		}
		expectedVersion = &v
	}
	return s.placements.Update(ctx, m, expectedVersion)
}

func (s *PlacementService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.placements.Delete(ctx, id, tenantID)
}

func (s *PlacementService) Restore(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.placements.Restore(ctx, id, tenantID)
}
