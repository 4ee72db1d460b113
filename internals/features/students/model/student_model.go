// internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: students
// =======================================

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`

	// Relasi ke cohort (boleh pindah, tetap divalidasi satu school)
	StudentCohortID *uuid.UUID `gorm:"column:student_cohort_id;type:uuid;index" json:"student_cohort_id,omitempty"`

	// Identitas
	StudentFullName  string     `gorm:"column:student_full_name;type:varchar(120);not null" json:"student_full_name"`
	StudentNISN      *string    `gorm:"column:student_nisn;type:varchar(20)" json:"student_nisn,omitempty"`
	StudentGender    *string    `gorm:"column:student_gender;type:varchar(10)" json:"student_gender,omitempty"`
	StudentBirthDate *time.Time `gorm:"column:student_birth_date;type:date" json:"student_birth_date,omitempty"`

	// Kontak (diedit juga lewat parent form)
	StudentPhone   *string `gorm:"column:student_phone;type:varchar(30)" json:"student_phone,omitempty"`
	StudentEmail   *string `gorm:"column:student_email;type:varchar(120)" json:"student_email,omitempty"`
	StudentAddress *string `gorm:"column:student_address" json:"student_address,omitempty"`
	StudentCity    *string `gorm:"column:student_city;type:varchar(80)" json:"student_city,omitempty"`

	// Wali
	StudentGuardianName  *string `gorm:"column:student_guardian_name;type:varchar(120)" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;type:varchar(30)" json:"student_guardian_phone,omitempty"`
	StudentGuardianEmail *string `gorm:"column:student_guardian_email;type:varchar(120)" json:"student_guardian_email,omitempty"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
