// internals/features/students/model/student_work_history_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: student_work_histories
// Riwayat kerja/magang sebelumnya milik siswa (CRUD biasa).
// =======================================

type StudentWorkHistoryModel struct {
	StudentWorkHistoryID uuid.UUID `gorm:"column:student_work_history_id;type:uuid;primaryKey" json:"student_work_history_id"`

	StudentWorkHistoryStudentID uuid.UUID `gorm:"column:student_work_history_student_id;type:uuid;not null;index" json:"student_work_history_student_id"`

	StudentWorkHistoryEmployer  string     `gorm:"column:student_work_history_employer;type:varchar(150);not null" json:"student_work_history_employer"`
	StudentWorkHistoryPosition  *string    `gorm:"column:student_work_history_position;type:varchar(120)" json:"student_work_history_position,omitempty"`
	StudentWorkHistoryStartDate *time.Time `gorm:"column:student_work_history_start_date;type:date" json:"student_work_history_start_date,omitempty"`
	StudentWorkHistoryEndDate   *time.Time `gorm:"column:student_work_history_end_date;type:date" json:"student_work_history_end_date,omitempty"`
	StudentWorkHistoryNotes     *string    `gorm:"column:student_work_history_notes;type:text" json:"student_work_history_notes,omitempty"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (StudentWorkHistoryModel) TableName() string { return "student_work_histories" }

func (m *StudentWorkHistoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentWorkHistoryID == uuid.Nil {
		m.StudentWorkHistoryID = uuid.New()
	}
	return nil
}
