// internals/features/students/model/cohort_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: cohorts (rombongan belajar / angkatan magang)
// =======================================

type CohortModel struct {
	CohortID uuid.UUID `gorm:"column:cohort_id;type:uuid;primaryKey" json:"cohort_id"`

	CohortName string `gorm:"column:cohort_name;type:varchar(80);not null" json:"cohort_name"`
	CohortYear int    `gorm:"column:cohort_year;not null" json:"cohort_year"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (CohortModel) TableName() string { return "cohorts" }

func (m *CohortModel) BeforeCreate(tx *gorm.DB) error {
	if m.CohortID == uuid.Nil {
		m.CohortID = uuid.New()
	}
	return nil
}
