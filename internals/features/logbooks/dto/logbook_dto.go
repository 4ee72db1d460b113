// internals/features/logbooks/dto/logbook_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"magangku_backend/internals/features/logbooks/model"
)

// =======================================
// Logbook task (katalog)
// =======================================

type LogbookTaskCreateRequest struct {
	LogbookTaskTitle       string  `json:"logbook_task_title" validate:"required,max=150"`
	LogbookTaskDescription *string `json:"logbook_task_description"`
}

func (r *LogbookTaskCreateRequest) ToModel() *model.LogbookTaskModel {
	return &model.LogbookTaskModel{
		LogbookTaskTitle:       r.LogbookTaskTitle,
		LogbookTaskDescription: r.LogbookTaskDescription,
		LogbookTaskIsActive:    true,
	}
}

type LogbookTaskUpdateRequest struct {
	LogbookTaskTitle       *string `json:"logbook_task_title" validate:"omitempty,max=150"`
	LogbookTaskDescription *string `json:"logbook_task_description"`
	LogbookTaskIsActive    *bool   `json:"logbook_task_is_active"`

	RowVersion *int64 `json:"row_version"`
}

func (r *LogbookTaskUpdateRequest) ApplyToModel(m *model.LogbookTaskModel) {
	if r.LogbookTaskTitle != nil {
		m.LogbookTaskTitle = *r.LogbookTaskTitle
	}
	if r.LogbookTaskDescription != nil {
		m.LogbookTaskDescription = r.LogbookTaskDescription
	}
	if r.LogbookTaskIsActive != nil {
		m.LogbookTaskIsActive = *r.LogbookTaskIsActive
	}
}

type LogbookTaskResponse struct {
	LogbookTaskID          uuid.UUID  `json:"logbook_task_id"`
	LogbookTaskTitle       string     `json:"logbook_task_title"`
	LogbookTaskDescription *string    `json:"logbook_task_description,omitempty"`
	LogbookTaskIsActive    bool       `json:"logbook_task_is_active"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty"`
	RowVersion             int64      `json:"row_version"`
}

func NewLogbookTaskResponse(m *model.LogbookTaskModel) *LogbookTaskResponse {
	return &LogbookTaskResponse{
		LogbookTaskID:          m.LogbookTaskID,
		LogbookTaskTitle:       m.LogbookTaskTitle,
		LogbookTaskDescription: m.LogbookTaskDescription,
		LogbookTaskIsActive:    m.LogbookTaskIsActive,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
		RowVersion:             m.GetRowVersion(),
	}
}

func NewLogbookTaskResponses(ms []model.LogbookTaskModel) []LogbookTaskResponse {
	out := make([]LogbookTaskResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewLogbookTaskResponse(&ms[i]))
	}
	return out
}

// =======================================
// Logbook entry (jurnal harian)
// =======================================

type LogbookEntryCreateRequest struct {
	LogbookEntryPlacementID uuid.UUID `json:"logbook_entry_placement_id" validate:"required"`

	LogbookEntryDate        time.Time `json:"logbook_entry_date" validate:"required"`
	LogbookEntryHours       float64   `json:"logbook_entry_hours" validate:"min=0,max=24"`
	LogbookEntryDescription string    `json:"logbook_entry_description" validate:"required"`

	LogbookEntryTasks []model.LogbookEntryTaskItem `json:"logbook_entry_tasks"`
}

func (r *LogbookEntryCreateRequest) ToModel() (*model.LogbookEntryModel, error) {
	tasks, err := datatypes.NewJSONType(r.LogbookEntryTasks).MarshalJSON()
	if err != nil {
		return nil, err
	}
	return &model.LogbookEntryModel{
		LogbookEntryPlacementID: r.LogbookEntryPlacementID,
		LogbookEntryDate:        r.LogbookEntryDate,
		LogbookEntryHours:       r.LogbookEntryHours,
		LogbookEntryDescription: r.LogbookEntryDescription,
		LogbookEntryTasks:       datatypes.JSON(tasks),
	}, nil
}

type LogbookEntryUpdateRequest struct {
	LogbookEntryDate        *time.Time `json:"logbook_entry_date"`
	LogbookEntryHours       *float64   `json:"logbook_entry_hours" validate:"omitempty,min=0,max=24"`
	LogbookEntryDescription *string    `json:"logbook_entry_description"`

	LogbookEntryTasks []model.LogbookEntryTaskItem `json:"logbook_entry_tasks"`

	LogbookEntrySupervisorComment *string `json:"logbook_entry_supervisor_comment"`

	RowVersion *int64 `json:"row_version"`
}

func (r *LogbookEntryUpdateRequest) ApplyToModel(m *model.LogbookEntryModel) error {
	if r.LogbookEntryDate != nil {
		m.LogbookEntryDate = *r.LogbookEntryDate
	}
	if r.LogbookEntryHours != nil {
		m.LogbookEntryHours = *r.LogbookEntryHours
	}
	if r.LogbookEntryDescription != nil {
		m.LogbookEntryDescription = *r.LogbookEntryDescription
	}
	if r.LogbookEntryTasks != nil {
		tasks, err := datatypes.NewJSONType(r.LogbookEntryTasks).MarshalJSON()
		if err != nil {
			return err
		}
		m.LogbookEntryTasks = datatypes.JSON(tasks)
	}
	if r.LogbookEntrySupervisorComment != nil {
		m.LogbookEntrySupervisorComment = r.LogbookEntrySupervisorComment
	}
	return nil
}

type LogbookEntryResponse struct {
	LogbookEntryID          uuid.UUID `json:"logbook_entry_id"`
	LogbookEntryPlacementID uuid.UUID `json:"logbook_entry_placement_id"`

	LogbookEntryDate        time.Time      `json:"logbook_entry_date"`
	LogbookEntryHours       float64        `json:"logbook_entry_hours"`
	LogbookEntryDescription string         `json:"logbook_entry_description"`
	LogbookEntryTasks       datatypes.JSON `json:"logbook_entry_tasks"`

	LogbookEntrySupervisorComment *string `json:"logbook_entry_supervisor_comment,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	RowVersion int64      `json:"row_version"`
}

func NewLogbookEntryResponse(m *model.LogbookEntryModel) *LogbookEntryResponse {
	return &LogbookEntryResponse{
		LogbookEntryID:                m.LogbookEntryID,
		LogbookEntryPlacementID:       m.LogbookEntryPlacementID,
		LogbookEntryDate:              m.LogbookEntryDate,
		LogbookEntryHours:             m.LogbookEntryHours,
		LogbookEntryDescription:       m.LogbookEntryDescription,
		LogbookEntryTasks:             m.LogbookEntryTasks,
		LogbookEntrySupervisorComment: m.LogbookEntrySupervisorComment,
		CreatedAt:                     m.CreatedAt,
		UpdatedAt:                     m.UpdatedAt,
		RowVersion:                    m.GetRowVersion(),
	}
}

func NewLogbookEntryResponses(ms []model.LogbookEntryModel) []LogbookEntryResponse {
	out := make([]LogbookEntryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewLogbookEntryResponse(&ms[i]))
	}
	return out
}

// =======================================
// Logbook evaluation (penilaian akhir)
// =======================================

type LogbookEvaluationCreateRequest struct {
	LogbookEvaluationPlacementID uuid.UUID `json:"logbook_evaluation_placement_id" validate:"required"`

	LogbookEvaluationEvaluatorName string     `json:"logbook_evaluation_evaluator_name" validate:"required,max=120"`
	LogbookEvaluationEvaluatorRole *string    `json:"logbook_evaluation_evaluator_role" validate:"omitempty,max=50"`
	LogbookEvaluationDate          *time.Time `json:"logbook_evaluation_date"`

	LogbookEvaluationScores  map[string]int `json:"logbook_evaluation_scores" validate:"dive,min=0,max=100"`
	LogbookEvaluationComment *string        `json:"logbook_evaluation_comment"`
}

func (r *LogbookEvaluationCreateRequest) ToModel() (*model.LogbookEvaluationModel, error) {
	scores, err := datatypes.NewJSONType(r.LogbookEvaluationScores).MarshalJSON()
	if err != nil {
		return nil, err
	}
	return &model.LogbookEvaluationModel{
		LogbookEvaluationPlacementID:   r.LogbookEvaluationPlacementID,
		LogbookEvaluationEvaluatorName: r.LogbookEvaluationEvaluatorName,
		LogbookEvaluationEvaluatorRole: r.LogbookEvaluationEvaluatorRole,
		LogbookEvaluationDate:          r.LogbookEvaluationDate,
		LogbookEvaluationScores:        datatypes.JSON(scores),
		LogbookEvaluationComment:       r.LogbookEvaluationComment,
	}, nil
}

type LogbookEvaluationResponse struct {
	LogbookEvaluationID          uuid.UUID `json:"logbook_evaluation_id"`
	LogbookEvaluationPlacementID uuid.UUID `json:"logbook_evaluation_placement_id"`

	LogbookEvaluationEvaluatorName string         `json:"logbook_evaluation_evaluator_name"`
	LogbookEvaluationEvaluatorRole *string        `json:"logbook_evaluation_evaluator_role,omitempty"`
	LogbookEvaluationDate          *time.Time     `json:"logbook_evaluation_date,omitempty"`
	LogbookEvaluationScores        datatypes.JSON `json:"logbook_evaluation_scores"`
	LogbookEvaluationComment       *string        `json:"logbook_evaluation_comment,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	RowVersion int64     `json:"row_version"`
}

func NewLogbookEvaluationResponse(m *model.LogbookEvaluationModel) *LogbookEvaluationResponse {
	return &LogbookEvaluationResponse{
		LogbookEvaluationID:            m.LogbookEvaluationID,
		LogbookEvaluationPlacementID:   m.LogbookEvaluationPlacementID,
		LogbookEvaluationEvaluatorName: m.LogbookEvaluationEvaluatorName,
		LogbookEvaluationEvaluatorRole: m.LogbookEvaluationEvaluatorRole,
		LogbookEvaluationDate:          m.LogbookEvaluationDate,
		LogbookEvaluationScores:        m.LogbookEvaluationScores,
		LogbookEvaluationComment:       m.LogbookEvaluationComment,
		CreatedAt:                      m.CreatedAt,
		RowVersion:                     m.GetRowVersion(),
	}
}

func NewLogbookEvaluationResponses(ms []model.LogbookEvaluationModel) []LogbookEvaluationResponse {
	out := make([]LogbookEvaluationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewLogbookEvaluationResponse(&ms[i]))
	}
	return out
}
