// internals/features/schools/model/school_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: schools (tenant itu sendiri)
// =======================================

type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;primaryKey" json:"school_id"`

	// Identitas
	SchoolName string `gorm:"column:school_name;type:varchar(150);not null" json:"school_name"`
	SchoolSlug string `gorm:"column:school_slug;type:varchar(120);unique;not null" json:"school_slug"`
	SchoolNPSN *string `gorm:"column:school_npsn;type:varchar(20)" json:"school_npsn,omitempty"`

	// Kontak & lokasi
	SchoolAddress  *string `gorm:"column:school_address" json:"school_address,omitempty"`
	SchoolCity     *string `gorm:"column:school_city;type:varchar(80)" json:"school_city,omitempty"`
	SchoolProvince *string `gorm:"column:school_province;type:varchar(80)" json:"school_province,omitempty"`
	SchoolPhone    *string `gorm:"column:school_phone;type:varchar(30)" json:"school_phone,omitempty"`
	SchoolEmail    *string `gorm:"column:school_email;type:varchar(120)" json:"school_email,omitempty"`

	SchoolIsActive bool `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`

	persistence.AuditColumns
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	return nil
}
