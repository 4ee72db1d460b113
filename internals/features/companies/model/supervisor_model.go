// internals/features/companies/model/supervisor_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: supervisors (pembimbing lapangan di perusahaan)
// =======================================

type SupervisorModel struct {
	SupervisorID uuid.UUID `gorm:"column:supervisor_id;type:uuid;primaryKey" json:"supervisor_id"`

	SupervisorCompanyID uuid.UUID `gorm:"column:supervisor_company_id;type:uuid;not null;index" json:"supervisor_company_id"`

	SupervisorName     string  `gorm:"column:supervisor_name;type:varchar(120);not null" json:"supervisor_name"`
	SupervisorPosition *string `gorm:"column:supervisor_position;type:varchar(120)" json:"supervisor_position,omitempty"`
	SupervisorPhone    *string `gorm:"column:supervisor_phone;type:varchar(30)" json:"supervisor_phone,omitempty"`
	SupervisorEmail    *string `gorm:"column:supervisor_email;type:varchar(120)" json:"supervisor_email,omitempty"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (SupervisorModel) TableName() string { return "supervisors" }

func (m *SupervisorModel) BeforeCreate(tx *gorm.DB) error {
	if m.SupervisorID == uuid.Nil {
		m.SupervisorID = uuid.New()
	}
	return nil
}
