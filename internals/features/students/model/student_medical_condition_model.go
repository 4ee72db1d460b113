// internals/features/students/model/student_medical_condition_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/persistence"
)

// =======================================
// ENUM: jenis kondisi medis
// =======================================

type MedicalConditionType string

const (
	ConditionAsthma               MedicalConditionType = "asthma"
	ConditionDiabetes             MedicalConditionType = "diabetes"
	ConditionEpilepsy             MedicalConditionType = "epilepsy"
	ConditionAllergies            MedicalConditionType = "allergies"
	ConditionLearningDifficulties MedicalConditionType = "learning_difficulties"
	ConditionMedication           MedicalConditionType = "medication"
	ConditionOther                MedicalConditionType = "other"
)

// MedicalConditionOrder: urutan tetap untuk ringkasan catatan medis
// yang dibagikan ke employer. Jangan diubah tanpa migrasi catatan lama.
var MedicalConditionOrder = []MedicalConditionType{
	ConditionAsthma,
	ConditionDiabetes,
	ConditionEpilepsy,
	ConditionAllergies,
	ConditionLearningDifficulties,
	ConditionMedication,
	ConditionOther,
}

var medicalConditionLabels = map[MedicalConditionType]string{
	ConditionAsthma:               "Asthma",
	ConditionDiabetes:             "Diabetes",
	ConditionEpilepsy:             "Epilepsy",
	ConditionAllergies:            "Allergies",
	ConditionLearningDifficulties: "Learning difficulties",
	ConditionMedication:           "Medication",
	ConditionOther:                "Other",
}

func (t MedicalConditionType) Label() string {
	if l, ok := medicalConditionLabels[t]; ok {
		return l
	}
	return string(t)
}

func (t MedicalConditionType) Valid() bool {
	_, ok := medicalConditionLabels[t]
	return ok
}

// =======================================
// Model: student_medical_conditions
// Replace-semantics sama seperti emergency_contacts.
// =======================================

type StudentMedicalConditionModel struct {
	StudentMedicalConditionID uuid.UUID `gorm:"column:student_medical_condition_id;type:uuid;primaryKey" json:"student_medical_condition_id"`

	StudentMedicalConditionStudentID uuid.UUID `gorm:"column:student_medical_condition_student_id;type:uuid;not null;index" json:"student_medical_condition_student_id"`

	StudentMedicalConditionType   MedicalConditionType `gorm:"column:student_medical_condition_type;type:varchar(30);not null" json:"student_medical_condition_type"`
	StudentMedicalConditionDetail string               `gorm:"column:student_medical_condition_detail;type:text;not null" json:"student_medical_condition_detail"`

	persistence.TenantColumns
	persistence.AuditColumns
}

func (StudentMedicalConditionModel) TableName() string { return "student_medical_conditions" }

func (m *StudentMedicalConditionModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentMedicalConditionID == uuid.Nil {
		m.StudentMedicalConditionID = uuid.New()
	}
	return nil
}
