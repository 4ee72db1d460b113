// internals/features/schools/dto/school_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/schools/model"
)

// =======================================
// Request
// =======================================

type SchoolCreateRequest struct {
	SchoolName string  `json:"school_name" validate:"required,max=150"`
	SchoolSlug string  `json:"school_slug" validate:"required,max=120"`
	SchoolNPSN *string `json:"school_npsn" validate:"omitempty,max=20"`

	SchoolAddress  *string `json:"school_address"`
	SchoolCity     *string `json:"school_city" validate:"omitempty,max=80"`
	SchoolProvince *string `json:"school_province" validate:"omitempty,max=80"`
	SchoolPhone    *string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail    *string `json:"school_email" validate:"omitempty,email"`
}

func (r *SchoolCreateRequest) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		SchoolName:     r.SchoolName,
		SchoolSlug:     r.SchoolSlug,
		SchoolNPSN:     r.SchoolNPSN,
		SchoolAddress:  r.SchoolAddress,
		SchoolCity:     r.SchoolCity,
		SchoolProvince: r.SchoolProvince,
		SchoolPhone:    r.SchoolPhone,
		SchoolEmail:    r.SchoolEmail,
		SchoolIsActive: true,
	}
}

type SchoolUpdateRequest struct {
	SchoolName *string `json:"school_name" validate:"omitempty,max=150"`
	SchoolNPSN *string `json:"school_npsn" validate:"omitempty,max=20"`

	SchoolAddress  *string `json:"school_address"`
	SchoolCity     *string `json:"school_city" validate:"omitempty,max=80"`
	SchoolProvince *string `json:"school_province" validate:"omitempty,max=80"`
	SchoolPhone    *string `json:"school_phone" validate:"omitempty,max=30"`
	SchoolEmail    *string `json:"school_email" validate:"omitempty,email"`
	SchoolIsActive *bool   `json:"school_is_active"`

	RowVersion *int64 `json:"row_version"`
}

func (r *SchoolUpdateRequest) ApplyToModel(m *model.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.SchoolNPSN != nil {
		m.SchoolNPSN = r.SchoolNPSN
	}
	if r.SchoolAddress != nil {
		m.SchoolAddress = r.SchoolAddress
	}
	if r.SchoolCity != nil {
		m.SchoolCity = r.SchoolCity
	}
	if r.SchoolProvince != nil {
		m.SchoolProvince = r.SchoolProvince
	}
	if r.SchoolPhone != nil {
		m.SchoolPhone = r.SchoolPhone
	}
	if r.SchoolEmail != nil {
		m.SchoolEmail = r.SchoolEmail
	}
	if r.SchoolIsActive != nil {
		m.SchoolIsActive = *r.SchoolIsActive
	}
}

// =======================================
// Response
// =======================================

type SchoolResponse struct {
	SchoolID uuid.UUID `json:"school_id"`

	SchoolName string  `json:"school_name"`
	SchoolSlug string  `json:"school_slug"`
	SchoolNPSN *string `json:"school_npsn,omitempty"`

	SchoolAddress  *string `json:"school_address,omitempty"`
	SchoolCity     *string `json:"school_city,omitempty"`
	SchoolProvince *string `json:"school_province,omitempty"`
	SchoolPhone    *string `json:"school_phone,omitempty"`
	SchoolEmail    *string `json:"school_email,omitempty"`

	SchoolIsActive bool `json:"school_is_active"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	RowVersion int64      `json:"row_version"`
}

func NewSchoolResponse(m *model.SchoolModel) *SchoolResponse {
	return &SchoolResponse{
		SchoolID:       m.SchoolID,
		SchoolName:     m.SchoolName,
		SchoolSlug:     m.SchoolSlug,
		SchoolNPSN:     m.SchoolNPSN,
		SchoolAddress:  m.SchoolAddress,
		SchoolCity:     m.SchoolCity,
		SchoolProvince: m.SchoolProvince,
		SchoolPhone:    m.SchoolPhone,
		SchoolEmail:    m.SchoolEmail,
		SchoolIsActive: m.SchoolIsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		RowVersion:     m.GetRowVersion(),
	}
}

func NewSchoolResponses(ms []model.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewSchoolResponse(&ms[i]))
	}
	return out
}
