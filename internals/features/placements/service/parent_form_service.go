// internals/features/placements/service/parent_form_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	companyModel "magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/features/placements/dto"
	"magangku_backend/internals/features/placements/model"
	studentModel "magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

/* ===============================
   Orchestrator: parent permission form
   Satu-satunya jalur yang memajukan pending_parent → confirmed.
   Kontak darurat & kondisi medis siswa di-REPLACE (set lama
   di-soft-delete, set baru masuk), bukan di-merge.
=================================*/

type ParentFormService struct {
	db     *gorm.DB
	tokens *FormTokenService

	placements  *persistence.Repo[model.PlacementModel]
	permissions *persistence.Repo[model.ParentPermissionModel]
	students    *persistence.Repo[studentModel.StudentModel]
	contacts    *persistence.Repo[studentModel.EmergencyContactModel]
	conditions  *persistence.Repo[studentModel.StudentMedicalConditionModel]
	companies   *persistence.Repo[companyModel.CompanyModel]
	supervisors *persistence.Repo[companyModel.SupervisorModel]
}

func NewParentFormService(db *gorm.DB) *ParentFormService {
	return &ParentFormService{
		db:          db,
		tokens:      NewFormTokenService(db),
		placements:  persistence.NewTenantRepo[model.PlacementModel](db, "placement_id"),
		permissions: persistence.NewTenantRepo[model.ParentPermissionModel](db, "parent_permission_id"),
		students:    persistence.NewTenantRepo[studentModel.StudentModel](db, "student_id"),
		contacts:    persistence.NewTenantRepo[studentModel.EmergencyContactModel](db, "emergency_contact_id"),
		conditions:  persistence.NewTenantRepo[studentModel.StudentMedicalConditionModel](db, "student_medical_condition_id"),
		companies:   persistence.NewTenantRepo[companyModel.CompanyModel](db, "company_id"),
		supervisors: persistence.NewTenantRepo[companyModel.SupervisorModel](db, "supervisor_id"),
	}
}

func (s *ParentFormService) resolveToken(ctx context.Context, token string) (*model.FormTokenModel, error) {
	tok, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	if tok == nil || !tok.IsValid() || tok.FormTokenFormType != model.FormTypeParentPermission {
		return nil, nil
	}
	return tok, nil
}

// InitializeForm: view-model prefilled. Placement atau siswanya hilang →
// nil (halaman invalid di caller), relasi lain yang kosong bukan error.
func (s *ParentFormService) InitializeForm(ctx context.Context, token string) (*dto.ParentFormDTO, error) {
	tok, err := s.resolveToken(ctx, token)
	if err != nil || tok == nil {
		return nil, err
	}

	placement, err := s.placements.ByID(ctx, tok.FormTokenPlacementID, nil)
	if err != nil {
		if err == persistence.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	student, err := s.students.ByID(ctx, placement.PlacementStudentID, nil)
	if err != nil {
		if err == persistence.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	var company *companyModel.CompanyModel
	if placement.PlacementCompanyID != nil {
		company, err = s.companies.ByID(ctx, *placement.PlacementCompanyID, nil)
		if err != nil && err != persistence.ErrNotFound {
			return nil, err
		}
	}

	var contacts []studentModel.EmergencyContactModel
	if err := s.contacts.Query(ctx, nil).
		Where("emergency_contact_student_id = ?", student.StudentID).
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	var conditions []studentModel.StudentMedicalConditionModel
	if err := s.conditions.Query(ctx, nil).
		Where("student_medical_condition_student_id = ?", student.StudentID).
		Find(&conditions).Error; err != nil {
		return nil, err
	}

	var perm *model.ParentPermissionModel
	var found model.ParentPermissionModel
	err = s.permissions.Query(ctx, nil).
		Where("parent_permission_placement_id = ?", placement.PlacementID).
		First(&found).Error
	switch {
	case err == nil:
		perm = &found
	case errors.Is(err, gorm.ErrRecordNotFound):
		// belum pernah submit, form mulai kosong
	default:
		return nil, err
	}

	return dto.NewParentFormDTO(placement, student, company, contacts, conditions, perm), nil
}

// SubmitForm: commit seluruh isian orang tua sebagai SATU transaksi.
// Urutan: kontak siswa → replace kontak darurat → company/supervisor
// (hanya kalau belum ada) → replace kondisi medis → upsert permission →
// stempel placement → token dibakar terakhir.
func (s *ParentFormService) SubmitForm(ctx context.Context, token string, req *dto.ParentFormSubmitRequest) (bool, error) {
	tok, err := s.resolveToken(ctx, token)
	if err != nil {
		return false, err
	}
	if tok == nil {
		return false, nil
	}

	placement, err := s.placements.ByID(ctx, tok.FormTokenPlacementID, nil)
	if err != nil {
		if err == persistence.ErrNotFound {
			return false, nil
		}
		return false, err
	}
	student, err := s.students.ByID(ctx, placement.PlacementStudentID, nil)
	if err != nil {
		if err == persistence.ErrNotFound {
			return false, nil
		}
		return false, err
	}

	for i := range req.MedicalConditions {
		if !req.MedicalConditions[i].Type.Valid() {
			return false, errors.New("jenis kondisi medis tidak dikenal")
		}
	}

	actor := persistence.ActorFrom(ctx)
	now := time.Now()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// --- 1. Kontak siswa.
		if req.Student.StudentPhone != nil {
			student.StudentPhone = req.Student.StudentPhone
		}
		if req.Student.StudentEmail != nil {
			student.StudentEmail = req.Student.StudentEmail
		}
		if req.Student.StudentAddress != nil {
			student.StudentAddress = req.Student.StudentAddress
		}
		if req.Student.StudentCity != nil {
			student.StudentCity = req.Student.StudentCity
		}
		if err := s.students.WithTx(tx).Update(ctx, student, nil); err != nil {
			return err
		}

		// --- 2. Kontak darurat: replace, bukan merge.
		if err := tx.Model(&studentModel.EmergencyContactModel{}).
			Where("emergency_contact_student_id = ?", student.StudentID).
			Updates(map[string]any{"deleted_at": now, "deleted_by": actor}).Error; err != nil {
			return err
		}
		contact := &studentModel.EmergencyContactModel{
			EmergencyContactStudentID:    student.StudentID,
			EmergencyContactName:         req.EmergencyContact.Name,
			EmergencyContactRelationship: req.EmergencyContact.Relationship,
			EmergencyContactPhone:        req.EmergencyContact.Phone,
			EmergencyContactPhoneAlt:     req.EmergencyContact.PhoneAlt,
			EmergencyContactIsPrimary:    true,
		}
		contact.SchoolID = student.SchoolID
		if err := s.contacts.WithTx(tx).Create(ctx, contact); err != nil {
			return err
		}

		// --- 3. Tempat magang: company dan supervisor masing-masing hanya
		// dibuat kalau placement belum punya — dua keputusan independen
		// (placement bisa sudah punya company tapi belum punya supervisor).
		// Data DUDI yang sudah ada tidak pernah ditimpa dari sisi parent.
		if req.Employment != nil {
			if placement.PlacementCompanyID == nil && req.Employment.CompanyName != nil {
				company := &companyModel.CompanyModel{
					CompanyName:    *req.Employment.CompanyName,
					CompanyAddress: req.Employment.CompanyAddress,
					CompanyCity:    req.Employment.CompanyCity,
					CompanyPhone:   req.Employment.CompanyPhone,
				}
				company.SchoolID = placement.SchoolID
				if err := s.companies.WithTx(tx).Create(ctx, company); err != nil {
					return err
				}
				placement.PlacementCompanyID = &company.CompanyID
			}
			if placement.PlacementSupervisorID == nil && placement.PlacementCompanyID != nil && req.Employment.SupervisorName != nil {
				sup := &companyModel.SupervisorModel{
					SupervisorCompanyID: *placement.PlacementCompanyID,
					SupervisorName:      *req.Employment.SupervisorName,
					SupervisorPhone:     req.Employment.SupervisorPhone,
					SupervisorEmail:     req.Employment.SupervisorEmail,
				}
				sup.SchoolID = placement.SchoolID
				if err := s.supervisors.WithTx(tx).Create(ctx, sup); err != nil {
					return err
				}
				placement.PlacementSupervisorID = &sup.SupervisorID
			}
		}

		// --- 4. Kondisi medis: replace, satu baris per kondisi tercentang.
		if err := tx.Model(&studentModel.StudentMedicalConditionModel{}).
			Where("student_medical_condition_student_id = ?", student.StudentID).
			Updates(map[string]any{"deleted_at": now, "deleted_by": actor}).Error; err != nil {
			return err
		}
		for i := range req.MedicalConditions {
			cond := &studentModel.StudentMedicalConditionModel{
				StudentMedicalConditionStudentID: student.StudentID,
				StudentMedicalConditionType:      req.MedicalConditions[i].Type,
				StudentMedicalConditionDetail:    req.MedicalConditions[i].Detail,
			}
			cond.SchoolID = student.SchoolID
			if err := s.conditions.WithTx(tx).Create(ctx, cond); err != nil {
				return err
			}
		}

		// --- 5. Persetujuan: tepat satu baris per placement (upsert).
		var perm model.ParentPermissionModel
		err := tx.Model(&model.ParentPermissionModel{}).
			Where("parent_permission_placement_id = ?", placement.PlacementID).
			First(&perm).Error
		isNew := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !isNew {
			return err
		}
		perm.ParentPermissionPlacementID = placement.PlacementID
		perm.ParentPermissionParentName = req.Permission.ParentName
		perm.ParentPermissionRelationship = req.Permission.Relationship
		perm.ParentPermissionPhone = req.Permission.Phone
		perm.ParentPermissionEmail = req.Permission.Email
		perm.ParentPermissionGranted = req.Permission.Granted
		perm.ParentPermissionShareMedicalWithEmployer = req.Permission.ShareMedicalWithEmployer
		perm.ParentPermissionSignedAt = &now
		// Catatan medis untuk employer hanya ada kalau di-opt-in;
		// opt-out harus mengosongkan isian lama, bukan membiarkannya.
		if req.Permission.ShareMedicalWithEmployer {
			notes := BuildMedicalNotes(req.MedicalConditions)
			perm.ParentPermissionMedicalNotesForEmployer = &notes
		} else {
			perm.ParentPermissionMedicalNotesForEmployer = nil
		}
		if isNew {
			perm.SchoolID = placement.SchoolID
			if err := s.permissions.WithTx(tx).Create(ctx, &perm); err != nil {
				return err
			}
		} else if err := s.permissions.WithTx(tx).Update(ctx, &perm, nil); err != nil {
			return err
		}

		// --- 6. Placement: stempel + status maju satu langkah.
		placement.PlacementParentSubmittedAt = &now
		if placement.PlacementStatus == model.PlacementPendingParent {
			placement.PlacementStatus = model.PlacementConfirmed
		}
		if err := s.placements.WithTx(tx).Update(ctx, placement, nil); err != nil {
			return err
		}

		// --- 7. Token dibakar paling akhir.
		return s.tokens.MarkUsed(ctx, tx, tok.FormTokenID)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// BuildMedicalNotes: rangkum kondisi tercentang jadi satu teks untuk
// employer, satu baris per kondisi, urutan tetap mengikuti
// MedicalConditionOrder (jangan tergantung urutan input form).
func BuildMedicalNotes(conditions []dto.ParentFormMedicalCondition) string {
	var b strings.Builder
	for _, t := range studentModel.MedicalConditionOrder {
		for i := range conditions {
			if conditions[i].Type != t {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(t.Label())
			b.WriteString(": ")
			b.WriteString(conditions[i].Detail)
		}
	}
	return b.String()
}
