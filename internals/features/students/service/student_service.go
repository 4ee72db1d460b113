// internals/features/students/service/student_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

type StudentService struct {
	students *persistence.Repo[model.StudentModel]
	cohorts  *persistence.Repo[model.CohortModel]
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{
		students: persistence.NewTenantRepo[model.StudentModel](db, "student_id"),
		cohorts:  persistence.NewTenantRepo[model.CohortModel](db, "cohort_id"),
	}
}

func (s *StudentService) GetAll(ctx context.Context, tenantID *uuid.UUID) ([]model.StudentModel, error) {
	return s.students.All(ctx, tenantID)
}

func (s *StudentService) List(ctx context.Context, tenantID *uuid.UUID, order string, limit, offset int) ([]model.StudentModel, int64, error) {
	return s.students.Page(ctx, tenantID, order, limit, offset)
}

func (s *StudentService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.StudentModel, error) {
	return s.students.ByID(ctx, id, tenantID)
}

func (s *StudentService) Exists(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (bool, error) {
	return s.students.Exists(ctx, id, tenantID)
}

// Create: wajib ada tenant; cohort (kalau diisi) harus milik school yang sama.
func (s *StudentService) Create(ctx context.Context, m *model.StudentModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	if err := s.validateCohort(ctx, m, tid); err != nil {
		return err
	}
	return s.students.Create(ctx, m)
}

// Update: re-fetch baris scoped id+tenant; school_id tidak pernah ikut
// berubah; pindah cohort boleh tapi divalidasi ulang satu school.
func (s *StudentService) Update(ctx context.Context, m *model.StudentModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.students.ByID(ctx, m.StudentID, tenantID)
	if err != nil {
		return err
	}
	m.SchoolID = existing.SchoolID
	m.CreatedAt = existing.CreatedAt
	m.CreatedBy = existing.CreatedBy
	if expectedVersion == nil {
		// Token dibawa implisit oleh model hasil fetch caller.
		v := m.GetRowVersion()
		if v == 0 {
			v = existing.GetRowVersion()
		}
		expectedVersion = &v
	}
	if err := s.validateCohort(ctx, m, existing.SchoolID); err != nil {
		return err
	}
	return s.students.Update(ctx, m, expectedVersion)
}

func (s *StudentService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.students.Delete(ctx, id, tenantID)
}

func (s *StudentService) Restore(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.students.Restore(ctx, id, tenantID)
}

func (s *StudentService) validateCohort(ctx context.Context, m *model.StudentModel, tid uuid.UUID) error {
	if m.StudentCohortID == nil {
		return nil
	}
	ok, err := s.cohorts.Exists(ctx, *m.StudentCohortID, &tid)
	if err != nil {
		return err
	}
	if !ok {
		return persistence.ErrCrossTenant
	}
	return nil
}
