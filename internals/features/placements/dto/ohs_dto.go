// internals/features/placements/dto/ohs_dto.go
package dto

import "magangku_backend/internals/features/placements/model"

// =======================================
// OHSSection: blok K3/keselamatan kerja di placement.
// Dipakai dua arah — prefill form employer dan payload submit-nya.
// Semua pointer: nil = belum diisi.
// =======================================

type OHSSection struct {
	OHSInductionProvided *bool   `json:"ohs_induction_provided"`
	OHSInductionDetails  *string `json:"ohs_induction_details"`
	SupervisionLevel     *string `json:"supervision_level" validate:"omitempty,max=60"`
	SupervisorFirstAid   *bool   `json:"supervisor_first_aid"`
	FirstAidOfficer      *string `json:"first_aid_officer" validate:"omitempty,max=120"`
	EmergencyProcedures  *string `json:"emergency_procedures"`
	PPERequired          *bool   `json:"ppe_required"`
	PPEDetails           *string `json:"ppe_details"`
	PPEProvidedBy        *string `json:"ppe_provided_by" validate:"omitempty,max=60"`
	TrainingProvided     *string `json:"training_provided"`

	HazardMachinery      *bool   `json:"hazard_machinery"`
	HazardChemicals      *bool   `json:"hazard_chemicals"`
	HazardHeights        *bool   `json:"hazard_heights"`
	HazardElectrical     *bool   `json:"hazard_electrical"`
	HazardManualHandling *bool   `json:"hazard_manual_handling"`
	HazardNoise          *bool   `json:"hazard_noise"`
	HazardDustFumes      *bool   `json:"hazard_dust_fumes"`
	HazardAnimals        *bool   `json:"hazard_animals"`
	HazardVehicles       *bool   `json:"hazard_vehicles"`
	HazardOther          *string `json:"hazard_other"`
	HazardControls       *string `json:"hazard_controls"`

	InsuranceConfirmed *bool   `json:"insurance_confirmed"`
	WorkcoverConfirmed *bool   `json:"workcover_confirmed"`
	SafeWorkMethod     *string `json:"safe_work_method"`
}

func NewOHSSection(m *model.PlacementModel) *OHSSection {
	return &OHSSection{
		OHSInductionProvided: m.PlacementOHSInductionProvided,
		OHSInductionDetails:  m.PlacementOHSInductionDetails,
		SupervisionLevel:     m.PlacementSupervisionLevel,
		SupervisorFirstAid:   m.PlacementSupervisorFirstAid,
		FirstAidOfficer:      m.PlacementFirstAidOfficer,
		EmergencyProcedures:  m.PlacementEmergencyProcedures,
		PPERequired:          m.PlacementPPERequired,
		PPEDetails:           m.PlacementPPEDetails,
		PPEProvidedBy:        m.PlacementPPEProvidedBy,
		TrainingProvided:     m.PlacementTrainingProvided,
		HazardMachinery:      m.PlacementHazardMachinery,
		HazardChemicals:      m.PlacementHazardChemicals,
		HazardHeights:        m.PlacementHazardHeights,
		HazardElectrical:     m.PlacementHazardElectrical,
		HazardManualHandling: m.PlacementHazardManualHandling,
		HazardNoise:          m.PlacementHazardNoise,
		HazardDustFumes:      m.PlacementHazardDustFumes,
		HazardAnimals:        m.PlacementHazardAnimals,
		HazardVehicles:       m.PlacementHazardVehicles,
		HazardOther:          m.PlacementHazardOther,
		HazardControls:       m.PlacementHazardControls,
		InsuranceConfirmed:   m.PlacementInsuranceConfirmed,
		WorkcoverConfirmed:   m.PlacementWorkcoverConfirmed,
		SafeWorkMethod:       m.PlacementSafeWorkMethod,
	}
}

// ApplyToModel: tulis jawaban employer ke placement. Field nil dilewati,
// jadi submit parsial tidak menghapus jawaban yang sudah ada.
func (s *OHSSection) ApplyToModel(m *model.PlacementModel) {
	if s.OHSInductionProvided != nil {
		m.PlacementOHSInductionProvided = s.OHSInductionProvided
	}
	if s.OHSInductionDetails != nil {
		m.PlacementOHSInductionDetails = s.OHSInductionDetails
	}
	if s.SupervisionLevel != nil {
		m.PlacementSupervisionLevel = s.SupervisionLevel
	}
	if s.SupervisorFirstAid != nil {
		m.PlacementSupervisorFirstAid = s.SupervisorFirstAid
	}
	if s.FirstAidOfficer != nil {
		m.PlacementFirstAidOfficer = s.FirstAidOfficer
	}
	if s.EmergencyProcedures != nil {
		m.PlacementEmergencyProcedures = s.EmergencyProcedures
	}
	if s.PPERequired != nil {
		m.PlacementPPERequired = s.PPERequired
	}
	if s.PPEDetails != nil {
		m.PlacementPPEDetails = s.PPEDetails
	}
	if s.PPEProvidedBy != nil {
		m.PlacementPPEProvidedBy = s.PPEProvidedBy
	}
	if s.TrainingProvided != nil {
		m.PlacementTrainingProvided = s.TrainingProvided
	}
	if s.HazardMachinery != nil {
		m.PlacementHazardMachinery = s.HazardMachinery
	}
	if s.HazardChemicals != nil {
		m.PlacementHazardChemicals = s.HazardChemicals
	}
	if s.HazardHeights != nil {
		m.PlacementHazardHeights = s.HazardHeights
	}
	if s.HazardElectrical != nil {
		m.PlacementHazardElectrical = s.HazardElectrical
	}
	if s.HazardManualHandling != nil {
		m.PlacementHazardManualHandling = s.HazardManualHandling
	}
	if s.HazardNoise != nil {
		m.PlacementHazardNoise = s.HazardNoise
	}
	if s.HazardDustFumes != nil {
		m.PlacementHazardDustFumes = s.HazardDustFumes
	}
	if s.HazardAnimals != nil {
		m.PlacementHazardAnimals = s.HazardAnimals
	}
	if s.HazardVehicles != nil {
		m.PlacementHazardVehicles = s.HazardVehicles
	}
	if s.HazardOther != nil {
		m.PlacementHazardOther = s.HazardOther
	}
	if s.HazardControls != nil {
		m.PlacementHazardControls = s.HazardControls
	}
	if s.InsuranceConfirmed != nil {
		m.PlacementInsuranceConfirmed = s.InsuranceConfirmed
	}
	if s.WorkcoverConfirmed != nil {
		m.PlacementWorkcoverConfirmed = s.WorkcoverConfirmed
	}
	if s.SafeWorkMethod != nil {
		m.PlacementSafeWorkMethod = s.SafeWorkMethod
	}
}
