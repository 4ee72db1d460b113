// internals/features/companies/model/company_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// Model: companies (DUDI / tempat magang)
// =======================================

type CompanyModel struct {
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;primaryKey" json:"company_id"`

	CompanyName     string  `gorm:"column:company_name;type:varchar(150);not null" json:"company_name"`
	CompanyIndustry *string `gorm:"column:company_industry;type:varchar(80)" json:"company_industry,omitempty"`

	// Alamat (diedit lewat employer form)
	CompanyAddress  *string `gorm:"column:company_address" json:"company_address,omitempty"`
	CompanyCity     *string `gorm:"column:company_city;type:varchar(80)" json:"company_city,omitempty"`
	CompanyProvince *string `gorm:"column:company_province;type:varchar(80)" json:"company_province,omitempty"`
	CompanyPostcode *string `gorm:"column:company_postcode;type:varchar(10)" json:"company_postcode,omitempty"`

	// Kontak
	CompanyPhone   *string `gorm:"column:company_phone;type:varchar(30)" json:"company_phone,omitempty"`
	CompanyEmail   *string `gorm:"column:company_email;type:varchar(120)" json:"company_email,omitempty"`
	CompanyWebsite *string `gorm:"column:company_website;type:varchar(150)" json:"company_website,omitempty"`

	// Asuransi (wajib dikonfirmasi employer sebelum siswa mulai)
	CompanyInsuranceProvider     *string    `gorm:"column:company_insurance_provider;type:varchar(120)" json:"company_insurance_provider,omitempty"`
	CompanyInsurancePolicyNumber *string    `gorm:"column:company_insurance_policy_number;type:varchar(60)" json:"company_insurance_policy_number,omitempty"`
	CompanyInsuranceExpiryDate   *time.Time `gorm:"column:company_insurance_expiry_date;type:date" json:"company_insurance_expiry_date,omitempty"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (CompanyModel) TableName() string { return "companies" }

func (m *CompanyModel) BeforeCreate(tx *gorm.DB) error {
	if m.CompanyID == uuid.Nil {
		m.CompanyID = uuid.New()
	}
	return nil
}
