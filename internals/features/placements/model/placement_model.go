// internals/features/placements/model/placement_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

/*
Status penempatan (sesuai ENUM di DB):
- "draft"
- "pending_employer"
- "pending_parent"
- "confirmed"

Transisi hanya maju dan hanya lewat form orchestrator:
draft → pending_employer (staff kirim link employer)
pending_employer → pending_parent (employer submit)
pending_parent → confirmed (parent submit)
*/
type PlacementStatus string

const (
	PlacementDraft           PlacementStatus = "draft"
	PlacementPendingEmployer PlacementStatus = "pending_employer"
	PlacementPendingParent   PlacementStatus = "pending_parent"
	PlacementConfirmed       PlacementStatus = "confirmed"
)

var validPlacementStatus = map[PlacementStatus]struct{}{
	PlacementDraft:           {},
	PlacementPendingEmployer: {},
	PlacementPendingParent:   {},
	PlacementConfirmed:       {},
}

func (s PlacementStatus) Valid() bool {
	_, ok := validPlacementStatus[s]
	return ok
}

// Pastikan selalu lower-case saat scan/save
func (s *PlacementStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = PlacementStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = PlacementStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}

func (s PlacementStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// =======================================
// Model: placements (aggregate pusat program magang)
// =======================================

type PlacementModel struct {
	// PK
	PlacementID uuid.UUID `gorm:"column:placement_id;type:uuid;primaryKey" json:"placement_id"`

	// Relasi
	PlacementStudentID    uuid.UUID  `gorm:"column:placement_student_id;type:uuid;not null;index" json:"placement_student_id"`
	PlacementCompanyID    *uuid.UUID `gorm:"column:placement_company_id;type:uuid;index" json:"placement_company_id,omitempty"`
	PlacementSupervisorID *uuid.UUID `gorm:"column:placement_supervisor_id;type:uuid;index" json:"placement_supervisor_id,omitempty"`

	// Status workflow
	PlacementStatus PlacementStatus `gorm:"column:placement_status;type:varchar(20);not null;default:'draft'" json:"placement_status"`

	// Jadwal
	PlacementPosition    *string    `gorm:"column:placement_position;type:varchar(120)" json:"placement_position,omitempty"`
	PlacementStartDate   *time.Time `gorm:"column:placement_start_date;type:date" json:"placement_start_date,omitempty"`
	PlacementEndDate     *time.Time `gorm:"column:placement_end_date;type:date" json:"placement_end_date,omitempty"`
	PlacementDaysPerWeek *int       `gorm:"column:placement_days_per_week" json:"placement_days_per_week,omitempty"`
	PlacementWorkHours   *string    `gorm:"column:placement_work_hours;type:varchar(60)" json:"placement_work_hours,omitempty"`

	// ===== K3 / OHS (diisi employer lewat form eksternal) =====
	PlacementOHSInductionProvided *bool   `gorm:"column:placement_ohs_induction_provided" json:"placement_ohs_induction_provided,omitempty"`
	PlacementOHSInductionDetails  *string `gorm:"column:placement_ohs_induction_details;type:text" json:"placement_ohs_induction_details,omitempty"`
	PlacementSupervisionLevel     *string `gorm:"column:placement_supervision_level;type:varchar(60)" json:"placement_supervision_level,omitempty"`
	PlacementSupervisorFirstAid   *bool   `gorm:"column:placement_supervisor_first_aid" json:"placement_supervisor_first_aid,omitempty"`
	PlacementFirstAidOfficer      *string `gorm:"column:placement_first_aid_officer;type:varchar(120)" json:"placement_first_aid_officer,omitempty"`
	PlacementEmergencyProcedures  *string `gorm:"column:placement_emergency_procedures;type:text" json:"placement_emergency_procedures,omitempty"`
	PlacementPPERequired          *bool   `gorm:"column:placement_ppe_required" json:"placement_ppe_required,omitempty"`
	PlacementPPEDetails           *string `gorm:"column:placement_ppe_details;type:text" json:"placement_ppe_details,omitempty"`
	PlacementPPEProvidedBy        *string `gorm:"column:placement_ppe_provided_by;type:varchar(60)" json:"placement_ppe_provided_by,omitempty"`
	PlacementTrainingProvided     *string `gorm:"column:placement_training_provided;type:text" json:"placement_training_provided,omitempty"`

	// Daftar hazard di tempat kerja
	PlacementHazardMachinery      *bool   `gorm:"column:placement_hazard_machinery" json:"placement_hazard_machinery,omitempty"`
	PlacementHazardChemicals      *bool   `gorm:"column:placement_hazard_chemicals" json:"placement_hazard_chemicals,omitempty"`
	PlacementHazardHeights        *bool   `gorm:"column:placement_hazard_heights" json:"placement_hazard_heights,omitempty"`
	PlacementHazardElectrical     *bool   `gorm:"column:placement_hazard_electrical" json:"placement_hazard_electrical,omitempty"`
	PlacementHazardManualHandling *bool   `gorm:"column:placement_hazard_manual_handling" json:"placement_hazard_manual_handling,omitempty"`
	PlacementHazardNoise          *bool   `gorm:"column:placement_hazard_noise" json:"placement_hazard_noise,omitempty"`
	PlacementHazardDustFumes      *bool   `gorm:"column:placement_hazard_dust_fumes" json:"placement_hazard_dust_fumes,omitempty"`
	PlacementHazardAnimals        *bool   `gorm:"column:placement_hazard_animals" json:"placement_hazard_animals,omitempty"`
	PlacementHazardVehicles       *bool   `gorm:"column:placement_hazard_vehicles" json:"placement_hazard_vehicles,omitempty"`
	PlacementHazardOther          *string `gorm:"column:placement_hazard_other;type:text" json:"placement_hazard_other,omitempty"`
	PlacementHazardControls       *string `gorm:"column:placement_hazard_controls;type:text" json:"placement_hazard_controls,omitempty"`

	// Konfirmasi administratif employer
	PlacementInsuranceConfirmed *bool   `gorm:"column:placement_insurance_confirmed" json:"placement_insurance_confirmed,omitempty"`
	PlacementWorkcoverConfirmed *bool   `gorm:"column:placement_workcover_confirmed" json:"placement_workcover_confirmed,omitempty"`
	PlacementSafeWorkMethod     *string `gorm:"column:placement_safe_work_method;type:text" json:"placement_safe_work_method,omitempty"`

	// Stempel submit form eksternal
	PlacementEmployerSubmittedAt *time.Time `gorm:"column:placement_employer_submitted_at" json:"placement_employer_submitted_at,omitempty"`
	PlacementParentSubmittedAt   *time.Time `gorm:"column:placement_parent_submitted_at" json:"placement_parent_submitted_at,omitempty"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (PlacementModel) TableName() string { return "placements" }

func (m *PlacementModel) BeforeCreate(tx *gorm.DB) error {
	if m.PlacementID == uuid.Nil {
		m.PlacementID = uuid.New()
	}
	if m.PlacementStatus == "" {
		m.PlacementStatus = PlacementDraft
	}
	return nil
}
