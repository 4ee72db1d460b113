// internals/features/students/service/medical_condition_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

type MedicalConditionService struct {
	conditions *persistence.Repo[model.StudentMedicalConditionModel]
	students   *persistence.Repo[model.StudentModel]
}

func NewMedicalConditionService(db *gorm.DB) *MedicalConditionService {
	return &MedicalConditionService{
		conditions: persistence.NewTenantRepo[model.StudentMedicalConditionModel](db, "student_medical_condition_id"),
		students:   persistence.NewTenantRepo[model.StudentModel](db, "student_id"),
	}
}

func (s *MedicalConditionService) GetByStudent(ctx context.Context, studentID uuid.UUID, tenantID *uuid.UUID) ([]model.StudentMedicalConditionModel, error) {
	var rows []model.StudentMedicalConditionModel
	q := s.conditions.Query(ctx, tenantID)
	if err := q.Where("student_medical_condition_student_id = ?", studentID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *MedicalConditionService) Create(ctx context.Context, m *model.StudentMedicalConditionModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	ok, err := s.students.Exists(ctx, m.StudentMedicalConditionStudentID, &tid)
	if err != nil {
		return err
	}
	if !ok {
		return persistence.ErrCrossTenant
	}
	return s.conditions.Create(ctx, m)
}

func (s *MedicalConditionService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.conditions.Delete(ctx, id, tenantID)
}
