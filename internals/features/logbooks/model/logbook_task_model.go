// internals/features/logbooks/model/logbook_task_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: logbook_tasks (katalog tugas per school)
// =======================================

type LogbookTaskModel struct {
	LogbookTaskID uuid.UUID `gorm:"column:logbook_task_id;type:uuid;primaryKey" json:"logbook_task_id"`

	LogbookTaskTitle       string  `gorm:"column:logbook_task_title;type:varchar(150);not null" json:"logbook_task_title"`
	LogbookTaskDescription *string `gorm:"column:logbook_task_description;type:text" json:"logbook_task_description,omitempty"`
	LogbookTaskIsActive    bool    `gorm:"column:logbook_task_is_active;not null;default:true" json:"logbook_task_is_active"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (LogbookTaskModel) TableName() string { return "logbook_tasks" }

func (m *LogbookTaskModel) BeforeCreate(tx *gorm.DB) error {
	if m.LogbookTaskID == uuid.Nil {
		m.LogbookTaskID = uuid.New()
	}
	return nil
}
