// internals/features/placements/dto/parent_form_dto.go
package dto

import (
	"time"

	companyModel "magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/features/placements/model"
	studentModel "magangku_backend/internals/features/students/model"
)

/* ===============================
   Parent permission form
   Step 1: data kontak siswa
   Step 2: kontak darurat
   Step 3: tempat magang (hanya kalau placement belum punya company)
   Step 4: kondisi medis
   Step 5: persetujuan orang tua
=================================*/

type ParentFormStudentSection struct {
	// Read-only; identitas siswa tidak diedit dari form.
	StudentFullName string `json:"student_full_name"`

	StudentPhone   *string `json:"student_phone" validate:"omitempty,max=30"`
	StudentEmail   *string `json:"student_email" validate:"omitempty,email"`
	StudentAddress *string `json:"student_address"`
	StudentCity    *string `json:"student_city" validate:"omitempty,max=80"`
}

type ParentFormEmergencyContactSection struct {
	Name         string  `json:"name" validate:"required,max=120"`
	Relationship string  `json:"relationship" validate:"required,max=50"`
	Phone        string  `json:"phone" validate:"required,max=30"`
	PhoneAlt     *string `json:"phone_alt" validate:"omitempty,max=30"`
}

// ParentFormEmploymentSection: dipakai hanya kalau placement belum punya
// company (siswa cari tempat magang sendiri). Kalau placement sudah punya,
// section ini diabaikan saat submit — parent tidak boleh menimpa data DUDI.
type ParentFormEmploymentSection struct {
	CompanyName     *string `json:"company_name" validate:"omitempty,max=150"`
	CompanyAddress  *string `json:"company_address"`
	CompanyCity     *string `json:"company_city" validate:"omitempty,max=80"`
	CompanyPhone    *string `json:"company_phone" validate:"omitempty,max=30"`
	SupervisorName  *string `json:"supervisor_name" validate:"omitempty,max=120"`
	SupervisorPhone *string `json:"supervisor_phone" validate:"omitempty,max=30"`
	SupervisorEmail *string `json:"supervisor_email" validate:"omitempty,email"`
}

type ParentFormMedicalCondition struct {
	Type   studentModel.MedicalConditionType `json:"type" validate:"required"`
	Detail string                            `json:"detail" validate:"required"`
}

type ParentFormPermissionSection struct {
	ParentName   string  `json:"parent_name" validate:"required,max=120"`
	Relationship *string `json:"relationship" validate:"omitempty,max=50"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Email        *string `json:"email" validate:"omitempty,email"`

	Granted                  bool `json:"granted"`
	ShareMedicalWithEmployer bool `json:"share_medical_with_employer"`
}

// ParentFormDTO: view-model prefilled untuk halaman form orang tua.
type ParentFormDTO struct {
	PlacementID     string                `json:"placement_id"`
	PlacementStatus model.PlacementStatus `json:"placement_status"`

	Position  *string    `json:"position,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	CompanyName *string `json:"company_name,omitempty"`
	HasCompany  bool    `json:"has_company"`

	Student           ParentFormStudentSection           `json:"student"`
	EmergencyContact  *ParentFormEmergencyContactSection `json:"emergency_contact,omitempty"`
	MedicalConditions []ParentFormMedicalCondition       `json:"medical_conditions"`
	Permission        *ParentFormPermissionSection       `json:"permission,omitempty"`

	AlreadySubmitted bool `json:"already_submitted"`
}

func NewParentFormDTO(
	p *model.PlacementModel,
	st *studentModel.StudentModel,
	co *companyModel.CompanyModel,
	contacts []studentModel.EmergencyContactModel,
	conditions []studentModel.StudentMedicalConditionModel,
	perm *model.ParentPermissionModel,
) *ParentFormDTO {
	d := &ParentFormDTO{
		PlacementID:       p.PlacementID.String(),
		PlacementStatus:   p.PlacementStatus,
		Position:          p.PlacementPosition,
		StartDate:         p.PlacementStartDate,
		EndDate:           p.PlacementEndDate,
		HasCompany:        co != nil,
		MedicalConditions: make([]ParentFormMedicalCondition, 0, len(conditions)),
		AlreadySubmitted:  p.PlacementParentSubmittedAt != nil,
	}
	if co != nil {
		d.CompanyName = &co.CompanyName
	}
	if st != nil {
		d.Student = ParentFormStudentSection{
			StudentFullName: st.StudentFullName,
			StudentPhone:    st.StudentPhone,
			StudentEmail:    st.StudentEmail,
			StudentAddress:  st.StudentAddress,
			StudentCity:     st.StudentCity,
		}
	}
	// Prefill kontak darurat dari kontak primary aktif (kalau ada).
	for i := range contacts {
		c := &contacts[i]
		if !c.EmergencyContactIsPrimary && d.EmergencyContact != nil {
			continue
		}
		d.EmergencyContact = &ParentFormEmergencyContactSection{
			Name:         c.EmergencyContactName,
			Relationship: c.EmergencyContactRelationship,
			Phone:        c.EmergencyContactPhone,
			PhoneAlt:     c.EmergencyContactPhoneAlt,
		}
		if c.EmergencyContactIsPrimary {
			break
		}
	}
	for i := range conditions {
		d.MedicalConditions = append(d.MedicalConditions, ParentFormMedicalCondition{
			Type:   conditions[i].StudentMedicalConditionType,
			Detail: conditions[i].StudentMedicalConditionDetail,
		})
	}
	if perm != nil {
		d.Permission = &ParentFormPermissionSection{
			ParentName:               perm.ParentPermissionParentName,
			Relationship:             perm.ParentPermissionRelationship,
			Phone:                    perm.ParentPermissionPhone,
			Email:                    perm.ParentPermissionEmail,
			Granted:                  perm.ParentPermissionGranted,
			ShareMedicalWithEmployer: perm.ParentPermissionShareMedicalWithEmployer,
		}
	}
	return d
}

// ParentFormSubmitRequest: payload final setelah semua step selesai.
type ParentFormSubmitRequest struct {
	Student          ParentFormStudentSection          `json:"student"`
	EmergencyContact ParentFormEmergencyContactSection `json:"emergency_contact" validate:"required"`
	Employment       *ParentFormEmploymentSection      `json:"employment"`

	MedicalConditions []ParentFormMedicalCondition `json:"medical_conditions" validate:"dive"`

	Permission ParentFormPermissionSection `json:"permission" validate:"required"`
}
