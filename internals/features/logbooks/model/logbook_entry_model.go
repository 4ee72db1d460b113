// internals/features/logbooks/model/logbook_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Helper: item JSONB snapshot tugas di satu entry
// Disimpan di kolom: logbook_entry_tasks (jsonb, NOT NULL, default '[]')
// =======================================

type LogbookEntryTaskItem struct {
	LogbookTaskID uuid.UUID `json:"logbook_task_id"`
	Title         string    `json:"title"`
	Hours         float64   `json:"hours,omitempty"`
}

// =======================================
// Model: logbook_entries (jurnal harian siswa di tempat magang)
// =======================================

type LogbookEntryModel struct {
	LogbookEntryID uuid.UUID `gorm:"column:logbook_entry_id;type:uuid;primaryKey" json:"logbook_entry_id"`

	LogbookEntryPlacementID uuid.UUID `gorm:"column:logbook_entry_placement_id;type:uuid;not null;index" json:"logbook_entry_placement_id"`

	LogbookEntryDate        time.Time `gorm:"column:logbook_entry_date;type:date;not null" json:"logbook_entry_date"`
	LogbookEntryHours       float64   `gorm:"column:logbook_entry_hours;not null;default:0" json:"logbook_entry_hours"`
	LogbookEntryDescription string    `gorm:"column:logbook_entry_description;type:text;not null" json:"logbook_entry_description"`

	// Snapshot tugas yang dikerjakan hari itu (bukan FK hidup — katalog bisa
	// berubah tanpa mengubah jurnal lama)
	LogbookEntryTasks datatypes.JSON `gorm:"column:logbook_entry_tasks;type:jsonb;not null;default:'[]'" json:"logbook_entry_tasks"`

	LogbookEntrySupervisorComment *string `gorm:"column:logbook_entry_supervisor_comment;type:text" json:"logbook_entry_supervisor_comment,omitempty"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (LogbookEntryModel) TableName() string { return "logbook_entries" }

func (m *LogbookEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.LogbookEntryID == uuid.Nil {
		m.LogbookEntryID = uuid.New()
	}
	if len(m.LogbookEntryTasks) == 0 {
		m.LogbookEntryTasks = datatypes.JSON([]byte("[]"))
	}
	return nil
}
