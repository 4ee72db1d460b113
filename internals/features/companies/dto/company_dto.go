// internals/features/companies/dto/company_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/companies/model"
)

// =======================================
// Company
// =======================================

type CompanyCreateRequest struct {
	CompanyName     string  `json:"company_name" validate:"required,max=150"`
	CompanyIndustry *string `json:"company_industry" validate:"omitempty,max=80"`

	CompanyAddress  *string `json:"company_address"`
	CompanyCity     *string `json:"company_city" validate:"omitempty,max=80"`
	CompanyProvince *string `json:"company_province" validate:"omitempty,max=80"`
	CompanyPostcode *string `json:"company_postcode" validate:"omitempty,max=10"`

	CompanyPhone   *string `json:"company_phone" validate:"omitempty,max=30"`
	CompanyEmail   *string `json:"company_email" validate:"omitempty,email"`
	CompanyWebsite *string `json:"company_website" validate:"omitempty,max=150"`
}

func (r *CompanyCreateRequest) ToModel() *model.CompanyModel {
	return &model.CompanyModel{
		CompanyName:     r.CompanyName,
		CompanyIndustry: r.CompanyIndustry,
		CompanyAddress:  r.CompanyAddress,
		CompanyCity:     r.CompanyCity,
		CompanyProvince: r.CompanyProvince,
		CompanyPostcode: r.CompanyPostcode,
		CompanyPhone:    r.CompanyPhone,
		CompanyEmail:    r.CompanyEmail,
		CompanyWebsite:  r.CompanyWebsite,
	}
}

type CompanyUpdateRequest struct {
	CompanyName     *string `json:"company_name" validate:"omitempty,max=150"`
	CompanyIndustry *string `json:"company_industry" validate:"omitempty,max=80"`

	CompanyAddress  *string `json:"company_address"`
	CompanyCity     *string `json:"company_city" validate:"omitempty,max=80"`
	CompanyProvince *string `json:"company_province" validate:"omitempty,max=80"`
	CompanyPostcode *string `json:"company_postcode" validate:"omitempty,max=10"`

	CompanyPhone   *string `json:"company_phone" validate:"omitempty,max=30"`
	CompanyEmail   *string `json:"company_email" validate:"omitempty,email"`
	CompanyWebsite *string `json:"company_website" validate:"omitempty,max=150"`

	CompanyInsuranceProvider     *string    `json:"company_insurance_provider" validate:"omitempty,max=120"`
	CompanyInsurancePolicyNumber *string    `json:"company_insurance_policy_number" validate:"omitempty,max=60"`
	CompanyInsuranceExpiryDate   *time.Time `json:"company_insurance_expiry_date"`

	RowVersion *int64 `json:"row_version"`
}

func (r *CompanyUpdateRequest) ApplyToModel(m *model.CompanyModel) {
	if r.CompanyName != nil {
		m.CompanyName = *r.CompanyName
	}
	if r.CompanyIndustry != nil {
		m.CompanyIndustry = r.CompanyIndustry
	}
	if r.CompanyAddress != nil {
		m.CompanyAddress = r.CompanyAddress
	}
	if r.CompanyCity != nil {
		m.CompanyCity = r.CompanyCity
	}
	if r.CompanyProvince != nil {
		m.CompanyProvince = r.CompanyProvince
	}
	if r.CompanyPostcode != nil {
		m.CompanyPostcode = r.CompanyPostcode
	}
	if r.CompanyPhone != nil {
		m.CompanyPhone = r.CompanyPhone
	}
	if r.CompanyEmail != nil {
		m.CompanyEmail = r.CompanyEmail
	}
	if r.CompanyWebsite != nil {
		m.CompanyWebsite = r.CompanyWebsite
	}
	if r.CompanyInsuranceProvider != nil {
		m.CompanyInsuranceProvider = r.CompanyInsuranceProvider
	}
	if r.CompanyInsurancePolicyNumber != nil {
		m.CompanyInsurancePolicyNumber = r.CompanyInsurancePolicyNumber
	}
	if r.CompanyInsuranceExpiryDate != nil {
		m.CompanyInsuranceExpiryDate = r.CompanyInsuranceExpiryDate
	}
}

type CompanyResponse struct {
	CompanyID uuid.UUID `json:"company_id"`

	CompanyName     string  `json:"company_name"`
	CompanyIndustry *string `json:"company_industry,omitempty"`

	CompanyAddress  *string `json:"company_address,omitempty"`
	CompanyCity     *string `json:"company_city,omitempty"`
	CompanyProvince *string `json:"company_province,omitempty"`
	CompanyPostcode *string `json:"company_postcode,omitempty"`

	CompanyPhone   *string `json:"company_phone,omitempty"`
	CompanyEmail   *string `json:"company_email,omitempty"`
	CompanyWebsite *string `json:"company_website,omitempty"`

	CompanyInsuranceProvider     *string    `json:"company_insurance_provider,omitempty"`
	CompanyInsurancePolicyNumber *string    `json:"company_insurance_policy_number,omitempty"`
	CompanyInsuranceExpiryDate   *time.Time `json:"company_insurance_expiry_date,omitempty"`

	SchoolID   uuid.UUID  `json:"school_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	RowVersion int64      `json:"row_version"`
}

func NewCompanyResponse(m *model.CompanyModel) *CompanyResponse {
	return &CompanyResponse{
		CompanyID:                    m.CompanyID,
		CompanyName:                  m.CompanyName,
		CompanyIndustry:              m.CompanyIndustry,
		CompanyAddress:               m.CompanyAddress,
		CompanyCity:                  m.CompanyCity,
		CompanyProvince:              m.CompanyProvince,
		CompanyPostcode:              m.CompanyPostcode,
		CompanyPhone:                 m.CompanyPhone,
		CompanyEmail:                 m.CompanyEmail,
		CompanyWebsite:               m.CompanyWebsite,
		CompanyInsuranceProvider:     m.CompanyInsuranceProvider,
		CompanyInsurancePolicyNumber: m.CompanyInsurancePolicyNumber,
		CompanyInsuranceExpiryDate:   m.CompanyInsuranceExpiryDate,
		SchoolID:                     m.SchoolID,
		CreatedAt:                    m.CreatedAt,
		UpdatedAt:                    m.UpdatedAt,
		RowVersion:                   m.GetRowVersion(),
	}
}

func NewCompanyResponses(ms []model.CompanyModel) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewCompanyResponse(&ms[i]))
	}
	return out
}

// =======================================
// Supervisor
// =======================================

type SupervisorCreateRequest struct {
	SupervisorCompanyID uuid.UUID `json:"supervisor_company_id" validate:"required"`

	SupervisorName     string  `json:"supervisor_name" validate:"required,max=120"`
	SupervisorPosition *string `json:"supervisor_position" validate:"omitempty,max=120"`
	SupervisorPhone    *string `json:"supervisor_phone" validate:"omitempty,max=30"`
	SupervisorEmail    *string `json:"supervisor_email" validate:"omitempty,email"`
}

func (r *SupervisorCreateRequest) ToModel() *model.SupervisorModel {
	return &model.SupervisorModel{
		SupervisorCompanyID: r.SupervisorCompanyID,
		SupervisorName:      r.SupervisorName,
		SupervisorPosition:  r.SupervisorPosition,
		SupervisorPhone:     r.SupervisorPhone,
		SupervisorEmail:     r.SupervisorEmail,
	}
}

type SupervisorUpdateRequest struct {
	SupervisorName     *string `json:"supervisor_name" validate:"omitempty,max=120"`
	SupervisorPosition *string `json:"supervisor_position" validate:"omitempty,max=120"`
	SupervisorPhone    *string `json:"supervisor_phone" validate:"omitempty,max=30"`
	SupervisorEmail    *string `json:"supervisor_email" validate:"omitempty,email"`

	RowVersion *int64 `json:"row_version"`
}

func (r *SupervisorUpdateRequest) ApplyToModel(m *model.SupervisorModel) {
	if r.SupervisorName != nil {
		m.SupervisorName = *r.SupervisorName
	}
	if r.SupervisorPosition != nil {
		m.SupervisorPosition = r.SupervisorPosition
	}
	if r.SupervisorPhone != nil {
		m.SupervisorPhone = r.SupervisorPhone
	}
	if r.SupervisorEmail != nil {
		m.SupervisorEmail = r.SupervisorEmail
	}
}

type SupervisorResponse struct {
	SupervisorID        uuid.UUID `json:"supervisor_id"`
	SupervisorCompanyID uuid.UUID `json:"supervisor_company_id"`

	SupervisorName     string  `json:"supervisor_name"`
	SupervisorPosition *string `json:"supervisor_position,omitempty"`
	SupervisorPhone    *string `json:"supervisor_phone,omitempty"`
	SupervisorEmail    *string `json:"supervisor_email,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	RowVersion int64      `json:"row_version"`
}

func NewSupervisorResponse(m *model.SupervisorModel) *SupervisorResponse {
	return &SupervisorResponse{
		SupervisorID:        m.SupervisorID,
		SupervisorCompanyID: m.SupervisorCompanyID,
		SupervisorName:      m.SupervisorName,
		SupervisorPosition:  m.SupervisorPosition,
		SupervisorPhone:     m.SupervisorPhone,
		SupervisorEmail:     m.SupervisorEmail,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		RowVersion:          m.GetRowVersion(),
	}
}

func NewSupervisorResponses(ms []model.SupervisorModel) []SupervisorResponse {
	out := make([]SupervisorResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewSupervisorResponse(&ms[i]))
	}
	return out
}
