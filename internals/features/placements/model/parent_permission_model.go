// internals/features/placements/model/parent_permission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: parent_permissions
// Tepat satu baris aktif per placement (upsert saat parent form submit).
// =======================================

type ParentPermissionModel struct {
	ParentPermissionID uuid.UUID `gorm:"column:parent_permission_id;type:uuid;primaryKey" json:"parent_permission_id"`

	ParentPermissionPlacementID uuid.UUID `gorm:"column:parent_permission_placement_id;type:uuid;not null;index" json:"parent_permission_placement_id"`

	ParentPermissionParentName   string  `gorm:"column:parent_permission_parent_name;type:varchar(120);not null" json:"parent_permission_parent_name"`
	ParentPermissionRelationship *string `gorm:"column:parent_permission_relationship;type:varchar(50)" json:"parent_permission_relationship,omitempty"`
	ParentPermissionPhone        *string `gorm:"column:parent_permission_phone;type:varchar(30)" json:"parent_permission_phone,omitempty"`
	ParentPermissionEmail        *string `gorm:"column:parent_permission_email;type:varchar(120)" json:"parent_permission_email,omitempty"`

	ParentPermissionGranted bool `gorm:"column:parent_permission_granted;not null;default:false" json:"parent_permission_granted"`

	// Opt-in berbagi info medis ke employer. Kalau false, kolom notes
	// di-null-kan (bukan dibiarkan berisi data lama).
	ParentPermissionShareMedicalWithEmployer bool    `gorm:"column:parent_permission_share_medical_with_employer;not null;default:false" json:"parent_permission_share_medical_with_employer"`
	ParentPermissionMedicalNotesForEmployer  *string `gorm:"column:parent_permission_medical_notes_for_employer;type:text" json:"parent_permission_medical_notes_for_employer,omitempty"`

	ParentPermissionSignedAt *time.Time `gorm:"column:parent_permission_signed_at" json:"parent_permission_signed_at,omitempty"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (ParentPermissionModel) TableName() string { return "parent_permissions" }

func (m *ParentPermissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParentPermissionID == uuid.Nil {
		m.ParentPermissionID = uuid.New()
	}
	return nil
}
