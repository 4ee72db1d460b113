// internals/features/placements/model/form_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// ENUM: jenis form eksternal
// =======================================

type FormType string

const (
	FormTypeEmployerAcceptance FormType = "employer_acceptance"
	FormTypeParentPermission   FormType = "parent_permission"
)

func (t FormType) Valid() bool {
	return t == FormTypeEmployerAcceptance || t == FormTypeParentPermission
}

// =======================================
// Model: form_tokens
// Bearer credential sekali pakai untuk satu placement + satu jenis form.
// Token disimpan plaintext: token ITU credential-nya (bukan password),
// dan harus bisa dikirim ulang ke penerima link.
// State machine: issued → (used | expired | revoked), semuanya final.
// =======================================

type FormTokenModel struct {
	FormTokenID uuid.UUID `gorm:"column:form_token_id;type:uuid;primaryKey" json:"form_token_id"`

	FormTokenPlacementID uuid.UUID `gorm:"column:form_token_placement_id;type:uuid;not null;index" json:"form_token_placement_id"`

	// Uniqueness dijaga constraint DB; generator tidak cek ulang collision
	// (32 byte random, probabilitas tabrakan diabaikan).
	FormToken string `gorm:"column:form_token;type:varchar(64);unique;not null" json:"form_token"`

	FormTokenFormType FormType `gorm:"column:form_token_form_type;type:varchar(30);not null" json:"form_token_form_type"`
	FormTokenEmail    *string  `gorm:"column:form_token_email;type:varchar(120)" json:"form_token_email,omitempty"`

	FormTokenExpiresAt time.Time  `gorm:"column:form_token_expires_at;not null" json:"form_token_expires_at"`
	FormTokenUsedAt    *time.Time `gorm:"column:form_token_used_at" json:"form_token_used_at,omitempty"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (FormTokenModel) TableName() string { return "form_tokens" }

func (m *FormTokenModel) BeforeCreate(tx *gorm.DB) error {
	if m.FormTokenID == uuid.Nil {
		m.FormTokenID = uuid.New()
	}
	return nil
}

// IsValid: hanya true di state issued dan belum lewat expiry.
// Token used/revoked(soft-deleted)/expired permanen tidak valid.
func (m *FormTokenModel) IsValid() bool {
	return m.FormTokenUsedAt == nil &&
		!m.IsDeleted() &&
		time.Now().Before(m.FormTokenExpiresAt)
}
