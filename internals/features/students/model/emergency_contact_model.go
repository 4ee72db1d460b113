// internals/features/students/model/emergency_contact_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: emergency_contacts
// Anak dari students. Saat parent form disubmit, set aktif lama
// di-soft-delete dan diganti set baru (replace, bukan merge).
// =======================================

type EmergencyContactModel struct {
	EmergencyContactID uuid.UUID `gorm:"column:emergency_contact_id;type:uuid;primaryKey" json:"emergency_contact_id"`

	EmergencyContactStudentID uuid.UUID `gorm:"column:emergency_contact_student_id;type:uuid;not null;index" json:"emergency_contact_student_id"`

	EmergencyContactName         string  `gorm:"column:emergency_contact_name;type:varchar(120);not null" json:"emergency_contact_name"`
	EmergencyContactRelationship string  `gorm:"column:emergency_contact_relationship;type:varchar(50);not null" json:"emergency_contact_relationship"`
	EmergencyContactPhone        string  `gorm:"column:emergency_contact_phone;type:varchar(30);not null" json:"emergency_contact_phone"`
	EmergencyContactPhoneAlt     *string `gorm:"column:emergency_contact_phone_alt;type:varchar(30)" json:"emergency_contact_phone_alt,omitempty"`
	EmergencyContactIsPrimary    bool    `gorm:"column:emergency_contact_is_primary;not null;default:false" json:"emergency_contact_is_primary"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (EmergencyContactModel) TableName() string { return "emergency_contacts" }

func (m *EmergencyContactModel) BeforeCreate(tx *gorm.DB) error {
	if m.EmergencyContactID == uuid.Nil {
		m.EmergencyContactID = uuid.New()
	}
	return nil
}
