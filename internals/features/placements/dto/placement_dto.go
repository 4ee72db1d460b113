// internals/features/placements/dto/placement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/placements/model"
)

// =======================================
// Request
// =======================================

type PlacementCreateRequest struct {
	PlacementStudentID    uuid.UUID  `json:"placement_student_id" validate:"required"`
	PlacementCompanyID    *uuid.UUID `json:"placement_company_id"`
	PlacementSupervisorID *uuid.UUID `json:"placement_supervisor_id"`

	PlacementPosition    *string    `json:"placement_position" validate:"omitempty,max=120"`
	PlacementStartDate   *time.Time `json:"placement_start_date"`
	PlacementEndDate     *time.Time `json:"placement_end_date"`
	PlacementDaysPerWeek *int       `json:"placement_days_per_week" validate:"omitempty,min=1,max=7"`
	PlacementWorkHours   *string    `json:"placement_work_hours" validate:"omitempty,max=60"`
}

func (r *PlacementCreateRequest) ToModel() *model.PlacementModel {
	return &model.PlacementModel{
		PlacementStudentID:    r.PlacementStudentID,
		PlacementCompanyID:    r.PlacementCompanyID,
		PlacementSupervisorID: r.PlacementSupervisorID,
		PlacementStatus:       model.PlacementDraft,
		PlacementPosition:     r.PlacementPosition,
		PlacementStartDate:    r.PlacementStartDate,
		PlacementEndDate:      r.PlacementEndDate,
		PlacementDaysPerWeek:  r.PlacementDaysPerWeek,
		PlacementWorkHours:    r.PlacementWorkHours,
	}
}

// PlacementUpdateRequest: hanya relasi & jadwal. Status dan kolom K3 bukan
// milik staff — status digerakkan orchestrator form, K3 diisi employer.
type PlacementUpdateRequest struct {
	PlacementCompanyID    *uuid.UUID `json:"placement_company_id"`
	PlacementSupervisorID *uuid.UUID `json:"placement_supervisor_id"`

	PlacementPosition    *string    `json:"placement_position" validate:"omitempty,max=120"`
	PlacementStartDate   *time.Time `json:"placement_start_date"`
	PlacementEndDate     *time.Time `json:"placement_end_date"`
	PlacementDaysPerWeek *int       `json:"placement_days_per_week" validate:"omitempty,min=1,max=7"`
	PlacementWorkHours   *string    `json:"placement_work_hours" validate:"omitempty,max=60"`

	RowVersion *int64 `json:"row_version"`
}

func (r *PlacementUpdateRequest) ApplyToModel(m *model.PlacementModel) {
	if r.PlacementCompanyID != nil {
		m.PlacementCompanyID = r.PlacementCompanyID
	}
	if r.PlacementSupervisorID != nil {
		m.PlacementSupervisorID = r.PlacementSupervisorID
	}
	if r.PlacementPosition != nil {
		m.PlacementPosition = r.PlacementPosition
	}
	if r.PlacementStartDate != nil {
		m.PlacementStartDate = r.PlacementStartDate
	}
	if r.PlacementEndDate != nil {
		m.PlacementEndDate = r.PlacementEndDate
	}
	if r.PlacementDaysPerWeek != nil {
		m.PlacementDaysPerWeek = r.PlacementDaysPerWeek
	}
	if r.PlacementWorkHours != nil {
		m.PlacementWorkHours = r.PlacementWorkHours
	}
}

// =======================================
// Response
// =======================================

type PlacementResponse struct {
	PlacementID uuid.UUID `json:"placement_id"`

	PlacementStudentID    uuid.UUID  `json:"placement_student_id"`
	PlacementCompanyID    *uuid.UUID `json:"placement_company_id,omitempty"`
	PlacementSupervisorID *uuid.UUID `json:"placement_supervisor_id,omitempty"`

	PlacementStatus model.PlacementStatus `json:"placement_status"`

	PlacementPosition    *string    `json:"placement_position,omitempty"`
	PlacementStartDate   *time.Time `json:"placement_start_date,omitempty"`
	PlacementEndDate     *time.Time `json:"placement_end_date,omitempty"`
	PlacementDaysPerWeek *int       `json:"placement_days_per_week,omitempty"`
	PlacementWorkHours   *string    `json:"placement_work_hours,omitempty"`

	PlacementEmployerSubmittedAt *time.Time `json:"placement_employer_submitted_at,omitempty"`
	PlacementParentSubmittedAt   *time.Time `json:"placement_parent_submitted_at,omitempty"`

	Safety *OHSSection `json:"safety,omitempty"`

	SchoolID   uuid.UUID  `json:"school_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	RowVersion int64      `json:"row_version"`
}

func NewPlacementResponse(m *model.PlacementModel) *PlacementResponse {
	resp := &PlacementResponse{
		PlacementID:                  m.PlacementID,
		PlacementStudentID:           m.PlacementStudentID,
		PlacementCompanyID:           m.PlacementCompanyID,
		PlacementSupervisorID:        m.PlacementSupervisorID,
		PlacementStatus:              m.PlacementStatus,
		PlacementPosition:            m.PlacementPosition,
		PlacementStartDate:           m.PlacementStartDate,
		PlacementEndDate:             m.PlacementEndDate,
		PlacementDaysPerWeek:         m.PlacementDaysPerWeek,
		PlacementWorkHours:           m.PlacementWorkHours,
		PlacementEmployerSubmittedAt: m.PlacementEmployerSubmittedAt,
		PlacementParentSubmittedAt:   m.PlacementParentSubmittedAt,
		SchoolID:                     m.SchoolID,
		CreatedAt:                    m.CreatedAt,
		UpdatedAt:                    m.UpdatedAt,
		RowVersion:                   m.GetRowVersion(),
	}
	// Blok K3 hanya ikut kalau employer sudah pernah submit.
	if m.PlacementEmployerSubmittedAt != nil {
		resp.Safety = NewOHSSection(m)
	}
	return resp
}

func NewPlacementResponses(ms []model.PlacementModel) []PlacementResponse {
	out := make([]PlacementResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewPlacementResponse(&ms[i]))
	}
	return out
}
