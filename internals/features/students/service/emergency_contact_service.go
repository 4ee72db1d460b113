// internals/features/students/service/emergency_contact_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

type EmergencyContactService struct {
	contacts *persistence.Repo[model.EmergencyContactModel]
	students *persistence.Repo[model.StudentModel]
}

func NewEmergencyContactService(db *gorm.DB) *EmergencyContactService {
	return &EmergencyContactService{
		contacts: persistence.NewTenantRepo[model.EmergencyContactModel](db, "emergency_contact_id"),
		students: persistence.NewTenantRepo[model.StudentModel](db, "student_id"),
	}
}

func (s *EmergencyContactService) GetByStudent(ctx context.Context, studentID uuid.UUID, tenantID *uuid.UUID) ([]model.EmergencyContactModel, error) {
	var rows []model.EmergencyContactModel
	q := s.contacts.Query(ctx, tenantID)
	if err := q.Where("emergency_contact_student_id = ?", studentID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *EmergencyContactService) GetByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*model.EmergencyContactModel, error) {
	return s.contacts.ByID(ctx, id, tenantID)
}

// Create: student yang dirujuk wajib satu school dengan kontak.
func (s *EmergencyContactService) Create(ctx context.Context, m *model.EmergencyContactModel, tenantID *uuid.UUID) error {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if m.SchoolID == uuid.Nil {
		m.SchoolID = tid
	}
	ok, err := s.students.Exists(ctx, m.EmergencyContactStudentID, &tid)
	if err != nil {
		return err
	}
	if !ok {
		return persistence.ErrCrossTenant
	}
	return s.contacts.Create(ctx, m)
}

// Update: parent-id (student) tidak boleh diganti lewat update.
func (s *EmergencyContactService) Update(ctx context.Context, m *model.EmergencyContactModel, expectedVersion *int64, tenantID *uuid.UUID) error {
	existing, err := s.contacts.ByID(ctx, m.EmergencyContactID, tenantID)
	if err != nil {
		return err
	}
	m.SchoolID = existing.SchoolID
	m.EmergencyContactStudentID = existing.EmergencyContactStudentID
	m.CreatedAt = existing.CreatedAt
	m.CreatedBy = existing.CreatedBy
	if expectedVersion == nil {
		v := m.GetRowVersion()
		if v == 0 {
			v = existing.GetRowVersion()
		}
		expectedVersion = &v
	}
	return s.contacts.Update(ctx, m, expectedVersion)
}

func (s *EmergencyContactService) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	return s.contacts.Delete(ctx, id, tenantID)
}
