// internals/features/logbooks/model/logbook_evaluation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: logbook_evaluations (penilaian akhir per placement)
// =======================================

type LogbookEvaluationModel struct {
	LogbookEvaluationID uuid.UUID `gorm:"column:logbook_evaluation_id;type:uuid;primaryKey" json:"logbook_evaluation_id"`

	LogbookEvaluationPlacementID uuid.UUID `gorm:"column:logbook_evaluation_placement_id;type:uuid;not null;index" json:"logbook_evaluation_placement_id"`

	LogbookEvaluationEvaluatorName string     `gorm:"column:logbook_evaluation_evaluator_name;type:varchar(120);not null" json:"logbook_evaluation_evaluator_name"`
	LogbookEvaluationEvaluatorRole *string    `gorm:"column:logbook_evaluation_evaluator_role;type:varchar(50)" json:"logbook_evaluation_evaluator_role,omitempty"`
	LogbookEvaluationDate          *time.Time `gorm:"column:logbook_evaluation_date;type:date" json:"logbook_evaluation_date,omitempty"`

	// Rincian skor per aspek (jsonb, mis. {"disiplin": 85, "inisiatif": 90})
	LogbookEvaluationScores datatypes.JSON `gorm:"column:logbook_evaluation_scores;type:jsonb;not null;default:'{}'" json:"logbook_evaluation_scores"`

	LogbookEvaluationComment *string `gorm:"column:logbook_evaluation_comment;type:text" json:"logbook_evaluation_comment,omitempty"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (LogbookEvaluationModel) TableName() string { return "logbook_evaluations" }

func (m *LogbookEvaluationModel) BeforeCreate(tx *gorm.DB) error {
	if m.LogbookEvaluationID == uuid.Nil {
		m.LogbookEvaluationID = uuid.New()
	}
	if len(m.LogbookEvaluationScores) == 0 {
		m.LogbookEvaluationScores = datatypes.JSON([]byte("{}"))
	}
	return nil
}
