// internals/features/placements/dto/employer_form_dto.go
package dto

import (
	"time"

	companyModel "magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/features/placements/model"
	studentModel "magangku_backend/internals/features/students/model"
)

/* ===============================
   Employer acceptance form
   Step 1: detail perusahaan + asuransi
   Step 2: pembimbing lapangan
   Step 3: K3 / hazard / konfirmasi
=================================*/

type EmployerFormCompanySection struct {
	// Read-only di form; identitas perusahaan tidak diedit employer.
	CompanyName string `json:"company_name"`

	CompanyAddress  *string `json:"company_address"`
	CompanyCity     *string `json:"company_city" validate:"omitempty,max=80"`
	CompanyProvince *string `json:"company_province" validate:"omitempty,max=80"`
	CompanyPostcode *string `json:"company_postcode" validate:"omitempty,max=10"`
	CompanyPhone    *string `json:"company_phone" validate:"omitempty,max=30"`
	CompanyEmail    *string `json:"company_email" validate:"omitempty,email"`
	CompanyWebsite  *string `json:"company_website" validate:"omitempty,max=150"`

	InsuranceProvider     *string    `json:"insurance_provider" validate:"omitempty,max=120"`
	InsurancePolicyNumber *string    `json:"insurance_policy_number" validate:"omitempty,max=60"`
	InsuranceExpiryDate   *time.Time `json:"insurance_expiry_date"`
}

type EmployerFormSupervisorSection struct {
	SupervisorName     string  `json:"supervisor_name" validate:"required,max=120"`
	SupervisorPosition *string `json:"supervisor_position" validate:"omitempty,max=120"`
	SupervisorPhone    *string `json:"supervisor_phone" validate:"omitempty,max=30"`
	SupervisorEmail    *string `json:"supervisor_email" validate:"omitempty,email"`
}

// EmployerFormDTO: view-model prefilled untuk halaman form employer.
// Relasi yang belum ada tampil sebagai section kosong, bukan error.
type EmployerFormDTO struct {
	PlacementID     string                `json:"placement_id"`
	PlacementStatus model.PlacementStatus `json:"placement_status"`

	StudentName string `json:"student_name"`

	Position    *string    `json:"position,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	DaysPerWeek *int       `json:"days_per_week,omitempty"`
	WorkHours   *string    `json:"work_hours,omitempty"`

	Company    EmployerFormCompanySection    `json:"company"`
	Supervisor EmployerFormSupervisorSection `json:"supervisor"`
	Safety     OHSSection                    `json:"safety"`

	AlreadySubmitted bool `json:"already_submitted"`
}

func NewEmployerFormDTO(p *model.PlacementModel, st *studentModel.StudentModel, co *companyModel.CompanyModel, sup *companyModel.SupervisorModel) *EmployerFormDTO {
	d := &EmployerFormDTO{
		PlacementID:      p.PlacementID.String(),
		PlacementStatus:  p.PlacementStatus,
		Position:         p.PlacementPosition,
		StartDate:        p.PlacementStartDate,
		EndDate:          p.PlacementEndDate,
		DaysPerWeek:      p.PlacementDaysPerWeek,
		WorkHours:        p.PlacementWorkHours,
		Safety:           *NewOHSSection(p),
		AlreadySubmitted: p.PlacementEmployerSubmittedAt != nil,
	}
	if st != nil {
		d.StudentName = st.StudentFullName
	}
	if co != nil {
		d.Company = EmployerFormCompanySection{
			CompanyName:           co.CompanyName,
			CompanyAddress:        co.CompanyAddress,
			CompanyCity:           co.CompanyCity,
			CompanyProvince:       co.CompanyProvince,
			CompanyPostcode:       co.CompanyPostcode,
			CompanyPhone:          co.CompanyPhone,
			CompanyEmail:          co.CompanyEmail,
			CompanyWebsite:        co.CompanyWebsite,
			InsuranceProvider:     co.CompanyInsuranceProvider,
			InsurancePolicyNumber: co.CompanyInsurancePolicyNumber,
			InsuranceExpiryDate:   co.CompanyInsuranceExpiryDate,
		}
	}
	if sup != nil {
		d.Supervisor = EmployerFormSupervisorSection{
			SupervisorName:     sup.SupervisorName,
			SupervisorPosition: sup.SupervisorPosition,
			SupervisorPhone:    sup.SupervisorPhone,
			SupervisorEmail:    sup.SupervisorEmail,
		}
	}
	return d
}

// EmployerFormSubmitRequest: payload final setelah semua step selesai.
type EmployerFormSubmitRequest struct {
	Company    EmployerFormCompanySection    `json:"company"`
	Supervisor EmployerFormSupervisorSection `json:"supervisor" validate:"required"`
	Safety     OHSSection                    `json:"safety"`
}
