// internals/persistence/audit.go
package persistence

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/optimisticlock"
)

/* ===============================
   Kolom audit bersama
   Di-embed oleh semua model yang dipersist. Kolom domain tetap pakai prefix
   per-entity (gaya tabel lama), tapi blok audit sengaja seragam supaya
   callback gateway bisa kerja tanpa daftar kolom per tabel.
=================================*/

type AuditColumns struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	CreatedBy string    `gorm:"column:created_by;type:varchar(80);not null;default:''" json:"created_by"`

	// Sengaja tanpa autoUpdateTime: baru terisi saat update pertama,
	// distempel oleh callback gateway.
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at,omitempty"`
	UpdatedBy *string    `gorm:"column:updated_by;type:varchar(80)" json:"updated_by,omitempty"`

	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
	DeletedBy *string        `gorm:"column:deleted_by;type:varchar(80)" json:"deleted_by,omitempty"`

	// Token optimistic-concurrency; berubah di setiap write yang sukses.
	RowVersion optimisticlock.Version `gorm:"column:row_version" json:"row_version"`
}

// IsDeleted: status lifecycle baris (Active | Deleted).
func (a *AuditColumns) IsDeleted() bool { return a.DeletedAt.Valid }

func (a *AuditColumns) GetRowVersion() int64 { return a.RowVersion.Int64 }

func (a *AuditColumns) SetRowVersion(v int64) {
	a.RowVersion = optimisticlock.Version{Int64: v, Valid: true}
}

// Versioned dipenuhi semua model yang embed AuditColumns.
type Versioned interface {
	GetRowVersion() int64
	SetRowVersion(int64)
}

/* ===============================
   Kolom tenant
=================================*/

type TenantColumns struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;not null;index" json:"school_id"`
}

func (t *TenantColumns) GetSchoolID() uuid.UUID { return t.SchoolID }

// TenantScoped dipenuhi model yang embed TenantColumns.
type TenantScoped interface {
	GetSchoolID() uuid.UUID
}
