// internals/features/placements/service/parent_form_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	companyModel "magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/features/placements/dto"
	"magangku_backend/internals/features/placements/model"
	studentModel "magangku_backend/internals/features/students/model"
)

func parentSubmitReq() *dto.ParentFormSubmitRequest {
	return &dto.ParentFormSubmitRequest{
		Student: dto.ParentFormStudentSection{
			StudentPhone:   strPtr("0813-1111-2222"),
			StudentAddress: strPtr("Jl. Melati No. 5"),
		},
		EmergencyContact: dto.ParentFormEmergencyContactSection{
			Name:         "Ibu Rina",
			Relationship: "Ibu",
			Phone:        "0812-9999-8888",
		},
		MedicalConditions: []dto.ParentFormMedicalCondition{
			{Type: studentModel.ConditionAsthma, Detail: "mild, inhaler"},
			{Type: studentModel.ConditionAllergies, Detail: "peanuts"},
		},
		Permission: dto.ParentFormPermissionSection{
			ParentName:               "Ibu Rina",
			Relationship:             strPtr("Ibu"),
			Granted:                  true,
			ShareMedicalWithEmployer: true,
		},
	}
}

// seedParentScenario: siswa + kontak darurat & kondisi medis lama +
// placement pending_parent dengan company, plus token parent aktif.
func seedParentScenario(t *testing.T, db *gorm.DB) (uuid.UUID, *model.PlacementModel, *studentModel.StudentModel, *model.FormTokenModel) {
	t.Helper()
	schoolID := uuid.New()
	st := seedStudent(t, db, schoolID)

	oldContact := &studentModel.EmergencyContactModel{
		EmergencyContactStudentID:    st.StudentID,
		EmergencyContactName:         "Pak Budi",
		EmergencyContactRelationship: "Ayah",
		EmergencyContactPhone:        "0811-0000-0001",
		EmergencyContactIsPrimary:    true,
	}
	oldContact.SchoolID = schoolID
	require.NoError(t, db.WithContext(staffCtx(schoolID)).Create(oldContact).Error)

	oldCond := &studentModel.StudentMedicalConditionModel{
		StudentMedicalConditionStudentID: st.StudentID,
		StudentMedicalConditionType:      studentModel.ConditionEpilepsy,
		StudentMedicalConditionDetail:    "data lama",
	}
	oldCond.SchoolID = schoolID
	require.NoError(t, db.WithContext(staffCtx(schoolID)).Create(oldCond).Error)

	co := seedCompany(t, db, schoolID)
	p := &model.PlacementModel{
		PlacementStudentID: st.StudentID,
		PlacementCompanyID: &co.CompanyID,
		PlacementStatus:    model.PlacementPendingParent,
	}
	p.SchoolID = schoolID
	require.NoError(t, db.WithContext(staffCtx(schoolID)).Create(p).Error)

	tok, err := NewFormTokenService(db).Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeParentPermission, nil, nil)
	require.NoError(t, err)
	return schoolID, p, st, tok
}

func TestParentFormSubmitHappyPath(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewParentFormService(db)
	_, p, st, tok := seedParentScenario(t, db)

	ok, err := svc.SubmitForm(anonCtx("parent-form"), tok.FormToken, parentSubmitReq())
	require.NoError(t, err)
	require.True(t, ok)

	// Placement: confirmed + stempel submit.
	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, model.PlacementConfirmed, got.PlacementStatus)
	require.NotNil(t, got.PlacementParentSubmittedAt)

	// Kontak siswa ter-update.
	var gotSt studentModel.StudentModel
	require.NoError(t, db.Where("student_id = ?", st.StudentID).First(&gotSt).Error)
	require.Equal(t, "0813-1111-2222", *gotSt.StudentPhone)
	require.Equal(t, "Jl. Melati No. 5", *gotSt.StudentAddress)

	// Kontak darurat: replace — yang aktif tinggal satu (yang baru),
	// yang lama soft-deleted tapi masih ada di DB.
	var active []studentModel.EmergencyContactModel
	require.NoError(t, db.Where("emergency_contact_student_id = ?", st.StudentID).Find(&active).Error)
	require.Len(t, active, 1)
	require.Equal(t, "Ibu Rina", active[0].EmergencyContactName)
	require.True(t, active[0].EmergencyContactIsPrimary)

	var all []studentModel.EmergencyContactModel
	require.NoError(t, db.Unscoped().Where("emergency_contact_student_id = ?", st.StudentID).Find(&all).Error)
	require.Len(t, all, 2)

	// Kondisi medis: replace juga.
	var conds []studentModel.StudentMedicalConditionModel
	require.NoError(t, db.Where("student_medical_condition_student_id = ?", st.StudentID).
		Order("student_medical_condition_type").Find(&conds).Error)
	require.Len(t, conds, 2)

	// Persetujuan: satu baris, granted, catatan medis dirangkum urut tetap.
	var perm model.ParentPermissionModel
	require.NoError(t, db.Where("parent_permission_placement_id = ?", p.PlacementID).First(&perm).Error)
	require.Equal(t, "Ibu Rina", perm.ParentPermissionParentName)
	require.True(t, perm.ParentPermissionGranted)
	require.True(t, perm.ParentPermissionShareMedicalWithEmployer)
	require.NotNil(t, perm.ParentPermissionSignedAt)
	require.NotNil(t, perm.ParentPermissionMedicalNotesForEmployer)
	require.Equal(t, "Asthma: mild, inhaler\nAllergies: peanuts", *perm.ParentPermissionMedicalNotesForEmployer)

	// Token terbakar.
	burned, err := NewFormTokenService(db).Validate(anonCtx("parent-form"), tok.FormToken)
	require.NoError(t, err)
	require.False(t, burned.IsValid())
}

func TestParentFormShareMedicalOptOut(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewParentFormService(db)
	_, p, _, tok := seedParentScenario(t, db)

	req := parentSubmitReq()
	req.Permission.ShareMedicalWithEmployer = false
	ok, err := svc.SubmitForm(anonCtx("parent-form"), tok.FormToken, req)
	require.NoError(t, err)
	require.True(t, ok)

	var perm model.ParentPermissionModel
	require.NoError(t, db.Where("parent_permission_placement_id = ?", p.PlacementID).First(&perm).Error)
	require.False(t, perm.ParentPermissionShareMedicalWithEmployer)
	require.Nil(t, perm.ParentPermissionMedicalNotesForEmployer)
}

func TestParentFormSubmitTwice(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewParentFormService(db)
	_, _, st, tok := seedParentScenario(t, db)

	ok, err := svc.SubmitForm(anonCtx("parent-form"), tok.FormToken, parentSubmitReq())
	require.NoError(t, err)
	require.True(t, ok)

	req2 := parentSubmitReq()
	req2.Student.StudentPhone = strPtr("nomor hasil replay")
	ok, err = svc.SubmitForm(anonCtx("parent-form"), tok.FormToken, req2)
	require.NoError(t, err)
	require.False(t, ok)

	var gotSt studentModel.StudentModel
	require.NoError(t, db.Where("student_id = ?", st.StudentID).First(&gotSt).Error)
	require.Equal(t, "0813-1111-2222", *gotSt.StudentPhone)
}

func TestParentFormRejectsUnknownCondition(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewParentFormService(db)
	_, p, _, tok := seedParentScenario(t, db)

	req := parentSubmitReq()
	req.MedicalConditions = append(req.MedicalConditions, dto.ParentFormMedicalCondition{
		Type: studentModel.MedicalConditionType("flu"), Detail: "x",
	})
	_, err := svc.SubmitForm(anonCtx("parent-form"), tok.FormToken, req)
	require.Error(t, err)

	// Tidak ada yang berubah, token masih hidup.
	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, model.PlacementPendingParent, got.PlacementStatus)
	alive, err := NewFormTokenService(db).Validate(anonCtx("parent-form"), tok.FormToken)
	require.NoError(t, err)
	require.True(t, alive.IsValid())
}

func TestParentFormCreatesEmploymentWhenPlacementHasNone(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewParentFormService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementPendingParent, nil, nil)
	tok, err := NewFormTokenService(db).Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeParentPermission, nil, nil)
	require.NoError(t, err)

	req := parentSubmitReq()
	req.Employment = &dto.ParentFormEmploymentSection{
		CompanyName:    strPtr("Bengkel Pak Dhe"),
		CompanyCity:    strPtr("Sleman"),
		SupervisorName: strPtr("Pak Dhe Harto"),
	}
	ok, err := svc.SubmitForm(anonCtx("parent-form"), tok.FormToken, req)
	require.NoError(t, err)
	require.True(t, ok)

	got := reloadPlacement(t, db, p.PlacementID)
	require.NotNil(t, got.PlacementCompanyID)
	require.NotNil(t, got.PlacementSupervisorID)

	var co companyModel.CompanyModel
	require.NoError(t, db.Where("company_id = ?", *got.PlacementCompanyID).First(&co).Error)
	require.Equal(t, "Bengkel Pak Dhe", co.CompanyName)
	require.Equal(t, schoolID, co.SchoolID)
}

func TestParentFormCreatesSupervisorForExistingCompany(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewParentFormService(db)
	_, p, _, tok := seedParentScenario(t, db)

	// Placement sudah punya company tapi belum punya supervisor; isian
	// supervisor dari orang tua tetap dipakai dan nempel ke company lama.
	req := parentSubmitReq()
	req.Employment = &dto.ParentFormEmploymentSection{
		SupervisorName:  strPtr("Bu Sari"),
		SupervisorPhone: strPtr("0815-7777-6666"),
	}
	ok, err := svc.SubmitForm(anonCtx("parent-form"), tok.FormToken, req)
	require.NoError(t, err)
	require.True(t, ok)

	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, *p.PlacementCompanyID, *got.PlacementCompanyID)
	require.NotNil(t, got.PlacementSupervisorID)

	var sup companyModel.SupervisorModel
	require.NoError(t, db.Where("supervisor_id = ?", *got.PlacementSupervisorID).First(&sup).Error)
	require.Equal(t, "Bu Sari", sup.SupervisorName)
	require.Equal(t, *p.PlacementCompanyID, sup.SupervisorCompanyID)

	var n int64
	require.NoError(t, db.Model(&companyModel.CompanyModel{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestParentFormNeverOverwritesExistingCompany(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewParentFormService(db)
	_, p, _, tok := seedParentScenario(t, db)

	req := parentSubmitReq()
	req.Employment = &dto.ParentFormEmploymentSection{
		CompanyName: strPtr("Perusahaan Tandingan"),
	}
	ok, err := svc.SubmitForm(anonCtx("parent-form"), tok.FormToken, req)
	require.NoError(t, err)
	require.True(t, ok)

	// Company placement tidak berganti dan tidak ada company baru.
	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, *p.PlacementCompanyID, *got.PlacementCompanyID)

	var n int64
	require.NoError(t, db.Model(&companyModel.CompanyModel{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestParentFormPermissionUpsert(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewParentFormService(db)
	schoolID, p, _, tok := seedParentScenario(t, db)

	ok, err := svc.SubmitForm(anonCtx("parent-form"), tok.FormToken, parentSubmitReq())
	require.NoError(t, err)
	require.True(t, ok)

	// Staff kirim ulang link (token baru), orang tua koreksi isian.
	tok2, err := NewFormTokenService(db).Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeParentPermission, nil, nil)
	require.NoError(t, err)

	req2 := parentSubmitReq()
	req2.Permission.ParentName = "Bapak Budi"
	ok, err = svc.SubmitForm(anonCtx("parent-form"), tok2.FormToken, req2)
	require.NoError(t, err)
	require.True(t, ok)

	// Tetap satu baris persetujuan per placement — di-update, bukan dobel.
	var perms []model.ParentPermissionModel
	require.NoError(t, db.Where("parent_permission_placement_id = ?", p.PlacementID).Find(&perms).Error)
	require.Len(t, perms, 1)
	require.Equal(t, "Bapak Budi", perms[0].ParentPermissionParentName)
}

func TestParentFormInitializePrefill(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewParentFormService(db)
	_, p, _, tok := seedParentScenario(t, db)

	view, err := svc.InitializeForm(anonCtx("parent-form"), tok.FormToken)
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Equal(t, p.PlacementID.String(), view.PlacementID)
	require.Equal(t, "Andi Pratama", view.Student.StudentFullName)
	require.True(t, view.HasCompany)
	require.NotNil(t, view.EmergencyContact)
	require.Equal(t, "Pak Budi", view.EmergencyContact.Name)
	require.Len(t, view.MedicalConditions, 1)
	require.Equal(t, studentModel.ConditionEpilepsy, view.MedicalConditions[0].Type)
	require.Nil(t, view.Permission)
	require.False(t, view.AlreadySubmitted)
}

func TestBuildMedicalNotesFixedOrder(t *testing.T) {
	// Input sengaja dibalik; output harus urut sesuai urutan kanonik.
	notes := BuildMedicalNotes([]dto.ParentFormMedicalCondition{
		{Type: studentModel.ConditionOther, Detail: "takut ketinggian"},
		{Type: studentModel.ConditionAllergies, Detail: "peanuts"},
		{Type: studentModel.ConditionAsthma, Detail: "mild, inhaler"},
	})
	require.Equal(t, "Asthma: mild, inhaler\nAllergies: peanuts\nOther: takut ketinggian", notes)

	require.Equal(t, "", BuildMedicalNotes(nil))
}
