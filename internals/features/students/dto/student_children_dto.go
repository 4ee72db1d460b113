// internals/features/students/dto/student_children_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/students/model"
)

// =======================================
// Emergency contact
// =======================================

type EmergencyContactCreateRequest struct {
	EmergencyContactStudentID uuid.UUID `json:"emergency_contact_student_id" validate:"required"`

	EmergencyContactName         string  `json:"emergency_contact_name" validate:"required,max=120"`
	EmergencyContactRelationship string  `json:"emergency_contact_relationship" validate:"required,max=50"`
	EmergencyContactPhone        string  `json:"emergency_contact_phone" validate:"required,max=30"`
	EmergencyContactPhoneAlt     *string `json:"emergency_contact_phone_alt" validate:"omitempty,max=30"`
	EmergencyContactIsPrimary    bool    `json:"emergency_contact_is_primary"`
}

func (r *EmergencyContactCreateRequest) ToModel() *model.EmergencyContactModel {
	return &model.EmergencyContactModel{
		EmergencyContactStudentID:    r.EmergencyContactStudentID,
		EmergencyContactName:         r.EmergencyContactName,
		EmergencyContactRelationship: r.EmergencyContactRelationship,
		EmergencyContactPhone:        r.EmergencyContactPhone,
		EmergencyContactPhoneAlt:     r.EmergencyContactPhoneAlt,
		EmergencyContactIsPrimary:    r.EmergencyContactIsPrimary,
	}
}

type EmergencyContactUpdateRequest struct {
	EmergencyContactName         *string `json:"emergency_contact_name" validate:"omitempty,max=120"`
	EmergencyContactRelationship *string `json:"emergency_contact_relationship" validate:"omitempty,max=50"`
	EmergencyContactPhone        *string `json:"emergency_contact_phone" validate:"omitempty,max=30"`
	EmergencyContactPhoneAlt     *string `json:"emergency_contact_phone_alt" validate:"omitempty,max=30"`
	EmergencyContactIsPrimary    *bool   `json:"emergency_contact_is_primary"`

	RowVersion *int64 `json:"row_version"`
}

func (r *EmergencyContactUpdateRequest) ApplyToModel(m *model.EmergencyContactModel) {
	if r.EmergencyContactName != nil {
		m.EmergencyContactName = *r.EmergencyContactName
	}
	if r.EmergencyContactRelationship != nil {
		m.EmergencyContactRelationship = *r.EmergencyContactRelationship
	}
	if r.EmergencyContactPhone != nil {
		m.EmergencyContactPhone = *r.EmergencyContactPhone
	}
	if r.EmergencyContactPhoneAlt != nil {
		m.EmergencyContactPhoneAlt = r.EmergencyContactPhoneAlt
	}
	if r.EmergencyContactIsPrimary != nil {
		m.EmergencyContactIsPrimary = *r.EmergencyContactIsPrimary
	}
}

type EmergencyContactResponse struct {
	EmergencyContactID        uuid.UUID `json:"emergency_contact_id"`
	EmergencyContactStudentID uuid.UUID `json:"emergency_contact_student_id"`

	EmergencyContactName         string  `json:"emergency_contact_name"`
	EmergencyContactRelationship string  `json:"emergency_contact_relationship"`
	EmergencyContactPhone        string  `json:"emergency_contact_phone"`
	EmergencyContactPhoneAlt     *string `json:"emergency_contact_phone_alt,omitempty"`
	EmergencyContactIsPrimary    bool    `json:"emergency_contact_is_primary"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	RowVersion int64      `json:"row_version"`
}

func NewEmergencyContactResponse(m *model.EmergencyContactModel) *EmergencyContactResponse {
	return &EmergencyContactResponse{
		EmergencyContactID:           m.EmergencyContactID,
		EmergencyContactStudentID:    m.EmergencyContactStudentID,
		EmergencyContactName:         m.EmergencyContactName,
		EmergencyContactRelationship: m.EmergencyContactRelationship,
		EmergencyContactPhone:        m.EmergencyContactPhone,
		EmergencyContactPhoneAlt:     m.EmergencyContactPhoneAlt,
		EmergencyContactIsPrimary:    m.EmergencyContactIsPrimary,
		CreatedAt:                    m.CreatedAt,
		UpdatedAt:                    m.UpdatedAt,
		RowVersion:                   m.GetRowVersion(),
	}
}

func NewEmergencyContactResponses(ms []model.EmergencyContactModel) []EmergencyContactResponse {
	out := make([]EmergencyContactResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewEmergencyContactResponse(&ms[i]))
	}
	return out
}

// =======================================
// Medical condition
// =======================================

type MedicalConditionCreateRequest struct {
	StudentMedicalConditionStudentID uuid.UUID `json:"student_medical_condition_student_id" validate:"required"`

	StudentMedicalConditionType   model.MedicalConditionType `json:"student_medical_condition_type" validate:"required,oneof=asthma diabetes epilepsy allergies learning_difficulties medication other"`
	StudentMedicalConditionDetail string                     `json:"student_medical_condition_detail" validate:"required"`
}

func (r *MedicalConditionCreateRequest) ToModel() *model.StudentMedicalConditionModel {
	return &model.StudentMedicalConditionModel{
		StudentMedicalConditionStudentID: r.StudentMedicalConditionStudentID,
		StudentMedicalConditionType:      r.StudentMedicalConditionType,
		StudentMedicalConditionDetail:    r.StudentMedicalConditionDetail,
	}
}

type MedicalConditionResponse struct {
	StudentMedicalConditionID        uuid.UUID `json:"student_medical_condition_id"`
	StudentMedicalConditionStudentID uuid.UUID `json:"student_medical_condition_student_id"`

	StudentMedicalConditionType   model.MedicalConditionType `json:"student_medical_condition_type"`
	StudentMedicalConditionLabel  string                     `json:"student_medical_condition_label"`
	StudentMedicalConditionDetail string                     `json:"student_medical_condition_detail"`

	CreatedAt time.Time `json:"created_at"`
}

func NewMedicalConditionResponse(m *model.StudentMedicalConditionModel) *MedicalConditionResponse {
	return &MedicalConditionResponse{
		StudentMedicalConditionID:        m.StudentMedicalConditionID,
		StudentMedicalConditionStudentID: m.StudentMedicalConditionStudentID,
		StudentMedicalConditionType:      m.StudentMedicalConditionType,
		StudentMedicalConditionLabel:     m.StudentMedicalConditionType.Label(),
		StudentMedicalConditionDetail:    m.StudentMedicalConditionDetail,
		CreatedAt:                        m.CreatedAt,
	}
}

func NewMedicalConditionResponses(ms []model.StudentMedicalConditionModel) []MedicalConditionResponse {
	out := make([]MedicalConditionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewMedicalConditionResponse(&ms[i]))
	}
	return out
}

// =======================================
// Work history
// =======================================

type WorkHistoryCreateRequest struct {
	StudentWorkHistoryStudentID uuid.UUID `json:"student_work_history_student_id" validate:"required"`

	StudentWorkHistoryEmployer  string     `json:"student_work_history_employer" validate:"required,max=150"`
	StudentWorkHistoryPosition  *string    `json:"student_work_history_position" validate:"omitempty,max=120"`
	StudentWorkHistoryStartDate *time.Time `json:"student_work_history_start_date"`
	StudentWorkHistoryEndDate   *time.Time `json:"student_work_history_end_date"`
	StudentWorkHistoryNotes     *string    `json:"student_work_history_notes"`
}

func (r *WorkHistoryCreateRequest) ToModel() *model.StudentWorkHistoryModel {
	return &model.StudentWorkHistoryModel{
		StudentWorkHistoryStudentID: r.StudentWorkHistoryStudentID,
		StudentWorkHistoryEmployer:  r.StudentWorkHistoryEmployer,
		StudentWorkHistoryPosition:  r.StudentWorkHistoryPosition,
		StudentWorkHistoryStartDate: r.StudentWorkHistoryStartDate,
		StudentWorkHistoryEndDate:   r.StudentWorkHistoryEndDate,
		StudentWorkHistoryNotes:     r.StudentWorkHistoryNotes,
	}
}

type WorkHistoryUpdateRequest struct {
	StudentWorkHistoryEmployer  *string    `json:"student_work_history_employer" validate:"omitempty,max=150"`
	StudentWorkHistoryPosition  *string    `json:"student_work_history_position" validate:"omitempty,max=120"`
	StudentWorkHistoryStartDate *time.Time `json:"student_work_history_start_date"`
	StudentWorkHistoryEndDate   *time.Time `json:"student_work_history_end_date"`
	StudentWorkHistoryNotes     *string    `json:"student_work_history_notes"`

	RowVersion *int64 `json:"row_version"`
}

func (r *WorkHistoryUpdateRequest) ApplyToModel(m *model.StudentWorkHistoryModel) {
	if r.StudentWorkHistoryEmployer != nil {
		m.StudentWorkHistoryEmployer = *r.StudentWorkHistoryEmployer
	}
	if r.StudentWorkHistoryPosition != nil {
		m.StudentWorkHistoryPosition = r.StudentWorkHistoryPosition
	}
	if r.StudentWorkHistoryStartDate != nil {
		m.StudentWorkHistoryStartDate = r.StudentWorkHistoryStartDate
	}
	if r.StudentWorkHistoryEndDate != nil {
		m.StudentWorkHistoryEndDate = r.StudentWorkHistoryEndDate
	}
	if r.StudentWorkHistoryNotes != nil {
		m.StudentWorkHistoryNotes = r.StudentWorkHistoryNotes
	}
}

type WorkHistoryResponse struct {
	StudentWorkHistoryID        uuid.UUID `json:"student_work_history_id"`
	StudentWorkHistoryStudentID uuid.UUID `json:"student_work_history_student_id"`

	StudentWorkHistoryEmployer  string     `json:"student_work_history_employer"`
	StudentWorkHistoryPosition  *string    `json:"student_work_history_position,omitempty"`
	StudentWorkHistoryStartDate *time.Time `json:"student_work_history_start_date,omitempty"`
	StudentWorkHistoryEndDate   *time.Time `json:"student_work_history_end_date,omitempty"`
	StudentWorkHistoryNotes     *string    `json:"student_work_history_notes,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	RowVersion int64      `json:"row_version"`
}

func NewWorkHistoryResponse(m *model.StudentWorkHistoryModel) *WorkHistoryResponse {
	return &WorkHistoryResponse{
		StudentWorkHistoryID:        m.StudentWorkHistoryID,
		StudentWorkHistoryStudentID: m.StudentWorkHistoryStudentID,
		StudentWorkHistoryEmployer:  m.StudentWorkHistoryEmployer,
		StudentWorkHistoryPosition:  m.StudentWorkHistoryPosition,
		StudentWorkHistoryStartDate: m.StudentWorkHistoryStartDate,
		StudentWorkHistoryEndDate:   m.StudentWorkHistoryEndDate,
		StudentWorkHistoryNotes:     m.StudentWorkHistoryNotes,
		CreatedAt:                   m.CreatedAt,
		UpdatedAt:                   m.UpdatedAt,
		RowVersion:                  m.GetRowVersion(),
	}
}

func NewWorkHistoryResponses(ms []model.StudentWorkHistoryModel) []WorkHistoryResponse {
	out := make([]WorkHistoryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewWorkHistoryResponse(&ms[i]))
	}
	return out
}
