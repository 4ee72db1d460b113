// internals/features/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/students/model"
)

// =======================================
// Student
// =======================================

type StudentCreateRequest struct {
	StudentCohortID *uuid.UUID `json:"student_cohort_id"`

	StudentFullName  string     `json:"student_full_name" validate:"required,max=120"`
	StudentNISN      *string    `json:"student_nisn" validate:"omitempty,max=20"`
	StudentGender    *string    `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentBirthDate *time.Time `json:"student_birth_date"`

	StudentPhone   *string `json:"student_phone" validate:"omitempty,max=30"`
	StudentEmail   *string `json:"student_email" validate:"omitempty,email"`
	StudentAddress *string `json:"student_address"`
	StudentCity    *string `json:"student_city" validate:"omitempty,max=80"`

	StudentGuardianName  *string `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=30"`
	StudentGuardianEmail *string `json:"student_guardian_email" validate:"omitempty,email"`
}

func (r *StudentCreateRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentCohortID:      r.StudentCohortID,
		StudentFullName:      r.StudentFullName,
		StudentNISN:          r.StudentNISN,
		StudentGender:        r.StudentGender,
		StudentBirthDate:     r.StudentBirthDate,
		StudentPhone:         r.StudentPhone,
		StudentEmail:         r.StudentEmail,
		StudentAddress:       r.StudentAddress,
		StudentCity:          r.StudentCity,
		StudentGuardianName:  r.StudentGuardianName,
		StudentGuardianPhone: r.StudentGuardianPhone,
		StudentGuardianEmail: r.StudentGuardianEmail,
	}
}

type StudentUpdateRequest struct {
	// Pindah cohort boleh; tetap divalidasi satu school di service.
	StudentCohortID *uuid.UUID `json:"student_cohort_id"`

	StudentFullName  *string    `json:"student_full_name" validate:"omitempty,max=120"`
	StudentNISN      *string    `json:"student_nisn" validate:"omitempty,max=20"`
	StudentGender    *string    `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentBirthDate *time.Time `json:"student_birth_date"`

	StudentPhone   *string `json:"student_phone" validate:"omitempty,max=30"`
	StudentEmail   *string `json:"student_email" validate:"omitempty,email"`
	StudentAddress *string `json:"student_address"`
	StudentCity    *string `json:"student_city" validate:"omitempty,max=80"`

	StudentGuardianName  *string `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=30"`
	StudentGuardianEmail *string `json:"student_guardian_email" validate:"omitempty,email"`

	RowVersion *int64 `json:"row_version"`
}

func (r *StudentUpdateRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentCohortID != nil {
		m.StudentCohortID = r.StudentCohortID
	}
	if r.StudentFullName != nil {
		m.StudentFullName = *r.StudentFullName
	}
	if r.StudentNISN != nil {
		m.StudentNISN = r.StudentNISN
	}
	if r.StudentGender != nil {
		m.StudentGender = r.StudentGender
	}
	if r.StudentBirthDate != nil {
		m.StudentBirthDate = r.StudentBirthDate
	}
	if r.StudentPhone != nil {
		m.StudentPhone = r.StudentPhone
	}
	if r.StudentEmail != nil {
		m.StudentEmail = r.StudentEmail
	}
	if r.StudentAddress != nil {
		m.StudentAddress = r.StudentAddress
	}
	if r.StudentCity != nil {
		m.StudentCity = r.StudentCity
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = r.StudentGuardianName
	}
	if r.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = r.StudentGuardianPhone
	}
	if r.StudentGuardianEmail != nil {
		m.StudentGuardianEmail = r.StudentGuardianEmail
	}
}

type StudentResponse struct {
	StudentID       uuid.UUID  `json:"student_id"`
	StudentCohortID *uuid.UUID `json:"student_cohort_id,omitempty"`

	StudentFullName  string     `json:"student_full_name"`
	StudentNISN      *string    `json:"student_nisn,omitempty"`
	StudentGender    *string    `json:"student_gender,omitempty"`
	StudentBirthDate *time.Time `json:"student_birth_date,omitempty"`

	StudentPhone   *string `json:"student_phone,omitempty"`
	StudentEmail   *string `json:"student_email,omitempty"`
	StudentAddress *string `json:"student_address,omitempty"`
	StudentCity    *string `json:"student_city,omitempty"`

	StudentGuardianName  *string `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `json:"student_guardian_phone,omitempty"`
	StudentGuardianEmail *string `json:"student_guardian_email,omitempty"`

	SchoolID   uuid.UUID  `json:"school_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	RowVersion int64      `json:"row_version"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	return &StudentResponse{
		StudentID:            m.StudentID,
		StudentCohortID:      m.StudentCohortID,
		StudentFullName:      m.StudentFullName,
		StudentNISN:          m.StudentNISN,
		StudentGender:        m.StudentGender,
		StudentBirthDate:     m.StudentBirthDate,
		StudentPhone:         m.StudentPhone,
		StudentEmail:         m.StudentEmail,
		StudentAddress:       m.StudentAddress,
		StudentCity:          m.StudentCity,
		StudentGuardianName:  m.StudentGuardianName,
		StudentGuardianPhone: m.StudentGuardianPhone,
		StudentGuardianEmail: m.StudentGuardianEmail,
		SchoolID:             m.SchoolID,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
		RowVersion:           m.GetRowVersion(),
	}
}

func NewStudentResponses(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewStudentResponse(&ms[i]))
	}
	return out
}

// =======================================
// Cohort
// =======================================

type CohortCreateRequest struct {
	CohortName string `json:"cohort_name" validate:"required,max=80"`
	CohortYear int    `json:"cohort_year" validate:"required,min=2000,max=2100"`
}

func (r *CohortCreateRequest) ToModel() *model.CohortModel {
	return &model.CohortModel{
		CohortName: r.CohortName,
		CohortYear: r.CohortYear,
	}
}

type CohortUpdateRequest struct {
	CohortName *string `json:"cohort_name" validate:"omitempty,max=80"`
	CohortYear *int    `json:"cohort_year" validate:"omitempty,min=2000,max=2100"`

	RowVersion *int64 `json:"row_version"`
}

func (r *CohortUpdateRequest) ApplyToModel(m *model.CohortModel) {
	if r.CohortName != nil {
		m.CohortName = *r.CohortName
	}
	if r.CohortYear != nil {
		m.CohortYear = *r.CohortYear
	}
}

type CohortResponse struct {
	CohortID   uuid.UUID  `json:"cohort_id"`
	CohortName string     `json:"cohort_name"`
	CohortYear int        `json:"cohort_year"`
	SchoolID   uuid.UUID  `json:"school_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	RowVersion int64      `json:"row_version"`
}

func NewCohortResponse(m *model.CohortModel) *CohortResponse {
	return &CohortResponse{
		CohortID:   m.CohortID,
		CohortName: m.CohortName,
		CohortYear: m.CohortYear,
		SchoolID:   m.SchoolID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		RowVersion: m.GetRowVersion(),
	}
}

func NewCohortResponses(ms []model.CohortModel) []CohortResponse {
	out := make([]CohortResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewCohortResponse(&ms[i]))
	}
	return out
}
