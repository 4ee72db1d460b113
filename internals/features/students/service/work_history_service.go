// internals/features/students/service/work_history_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

type WorkHistoryService struct {
	histories *persistence.Repo[model.StudentWorkHistoryModel]
	students  *persistence.Repo[model.StudentModel]
}

func NewWorkHistoryService(db *gorm.DB) *WorkHistoryService {
	return &WorkHistoryService{
		histories: persistence.NewTenantRepo[model.StudentWorkHistoryModel](db, "student_work_history_id"),
		students:  persistence.NewTenantRepo[model.StudentModel](db, "student_id"),
	}
}

func (s *WorkHistoryService) GetByStudent(ctx context.Context, studentID uuid.UUID, tenantID *uuid.UUID) ([]model.StudentWorkHistoryModel, error) {
	var rows []model.StudentWorkHistoryModel
	q := s.histories.Query(ctx, tenantID)
	if err := q.Where("student_work_history_student_id = ?", studentID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *WorkHistoryService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.StudentWorkHistoryModel, error) {
	return s.histories.ByID(ctx, id, tenantID)
}

func (s *WorkHistoryService) Create(ctx context.Context, m *model.StudentWorkHistoryModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	ok, err := s.students.Exists(ctx, m.StudentWorkHistoryStudentID, &tid)
	if err != nil {
		return err
	}
	if !ok {
		return persistence.ErrCrossTenant
	}
	return s.histories.Create(ctx, m)
}

func (s *WorkHistoryService) Update(ctx context.Context, m *model.StudentWorkHistoryModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.histories.ByID(ctx, m.StudentWorkHistoryID, tenantID)
	if err != nil {
		return err
	}
	m.SchoolID = existing.SchoolID
	m.StudentWorkHistoryStudentID = existing.StudentWorkHistoryStudentID
	m.CreatedAt = existing.CreatedAt
	m.CreatedBy = existing.CreatedBy
	if expectedVersion == nil {
		v := m.GetRowVersion()
		if v == 0 {
			v = existing.GetRowVersion()
		}
		expectedVersion = &v
	}
	return s.histories.Update(ctx, m, expectedVersion)
}

func (s *WorkHistoryService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.histories.Delete(ctx, id, tenantID)
}
