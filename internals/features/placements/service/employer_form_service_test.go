// internals/features/placements/service/employer_form_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	companyModel "magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/features/placements/dto"
	"magangku_backend/internals/features/placements/model"
)

func boolPtr(b bool) *bool { return &b }

func employerSubmitReq() *dto.EmployerFormSubmitRequest {
	return &dto.EmployerFormSubmitRequest{
		Company: dto.EmployerFormCompanySection{
			CompanyAddress:        strPtr("Jl. Industri No. 88"),
			CompanyPhone:          strPtr("021-555-0101"),
			InsuranceProvider:     strPtr("Asuransi Karya"),
			InsurancePolicyNumber: strPtr("POL-2026-0042"),
		},
		Supervisor: dto.EmployerFormSupervisorSection{
			SupervisorName:     "Pak Joko",
			SupervisorPosition: strPtr("Kepala Bengkel"),
			SupervisorPhone:    strPtr("0812-3456-7890"),
		},
		Safety: dto.OHSSection{
			OHSInductionProvided: boolPtr(true),
			OHSInductionDetails:  strPtr("Orientasi K3 hari pertama"),
			SupervisionLevel:   strPtr("direct"),
			PPERequired:        boolPtr(true),
			PPEDetails:         strPtr("Helm, sepatu safety"),
			HazardMachinery:    boolPtr(true),
			HazardChemicals:    boolPtr(false),
			InsuranceConfirmed: boolPtr(true),
			WorkcoverConfirmed: boolPtr(true),
		},
	}
}

func TestEmployerFormSubmitHappyPath(t *testing.T) {
	db := openServiceTestDB(t)
	tokens := NewFormTokenService(db)
	svc := NewEmployerFormService(db)

	schoolID := uuid.New()
	co := seedCompany(t, db, schoolID)
	sup := seedSupervisor(t, db, schoolID, co.CompanyID)
	p := seedPlacement(t, db, schoolID, model.PlacementPendingEmployer, &co.CompanyID, &sup.SupervisorID)

	tok, err := tokens.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeEmployerAcceptance, nil, nil)
	require.NoError(t, err)

	ok, err := svc.SubmitForm(anonCtx("employer-form"), tok.FormToken, employerSubmitReq())
	require.NoError(t, err)
	require.True(t, ok)

	// Placement: status maju, stempel submit + kolom K3 terisi.
	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, model.PlacementPendingParent, got.PlacementStatus)
	require.NotNil(t, got.PlacementEmployerSubmittedAt)
	require.NotNil(t, got.PlacementOHSInductionProvided)
	require.True(t, *got.PlacementOHSInductionProvided)
	require.NotNil(t, got.PlacementHazardMachinery)
	require.True(t, *got.PlacementHazardMachinery)
	require.NotNil(t, got.PlacementInsuranceConfirmed)
	require.True(t, *got.PlacementInsuranceConfirmed)

	// Company ter-update in place, termasuk data asuransi.
	var gotCo companyModel.CompanyModel
	require.NoError(t, db.Where("company_id = ?", co.CompanyID).First(&gotCo).Error)
	require.Equal(t, "Jl. Industri No. 88", *gotCo.CompanyAddress)
	require.Equal(t, "Asuransi Karya", *gotCo.CompanyInsuranceProvider)

	// Supervisor ter-update in place.
	var gotSup companyModel.SupervisorModel
	require.NoError(t, db.Where("supervisor_id = ?", sup.SupervisorID).First(&gotSup).Error)
	require.Equal(t, "Kepala Bengkel", *gotSup.SupervisorPosition)

	// Token terbakar persis sekali.
	burned, err := tokens.Validate(anonCtx("employer-form"), tok.FormToken)
	require.NoError(t, err)
	require.NotNil(t, burned.FormTokenUsedAt)
	require.False(t, burned.IsValid())
}

func TestEmployerFormSubmitTwice(t *testing.T) {
	db := openServiceTestDB(t)
	tokens := NewFormTokenService(db)
	svc := NewEmployerFormService(db)

	schoolID := uuid.New()
	co := seedCompany(t, db, schoolID)
	sup := seedSupervisor(t, db, schoolID, co.CompanyID)
	p := seedPlacement(t, db, schoolID, model.PlacementPendingEmployer, &co.CompanyID, &sup.SupervisorID)

	tok, err := tokens.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeEmployerAcceptance, nil, nil)
	require.NoError(t, err)

	ok, err := svc.SubmitForm(anonCtx("employer-form"), tok.FormToken, employerSubmitReq())
	require.NoError(t, err)
	require.True(t, ok)

	// Submit kedua dengan token yang sama: ditolak tanpa menyentuh data.
	req2 := employerSubmitReq()
	req2.Company.CompanyAddress = strPtr("alamat hasil replay")
	ok, err = svc.SubmitForm(anonCtx("employer-form"), tok.FormToken, req2)
	require.NoError(t, err)
	require.False(t, ok)

	var gotCo companyModel.CompanyModel
	require.NoError(t, db.Where("company_id = ?", co.CompanyID).First(&gotCo).Error)
	require.Equal(t, "Jl. Industri No. 88", *gotCo.CompanyAddress)
}

func TestEmployerFormCreatesCompanyAndSupervisor(t *testing.T) {
	db := openServiceTestDB(t)
	tokens := NewFormTokenService(db)
	svc := NewEmployerFormService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementPendingEmployer, nil, nil)

	tok, err := tokens.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeEmployerAcceptance, nil, nil)
	require.NoError(t, err)

	req := employerSubmitReq()
	req.Company.CompanyName = "CV Sumber Rejeki"
	ok, err := svc.SubmitForm(anonCtx("employer-form"), tok.FormToken, req)
	require.NoError(t, err)
	require.True(t, ok)

	got := reloadPlacement(t, db, p.PlacementID)
	require.NotNil(t, got.PlacementCompanyID)
	require.NotNil(t, got.PlacementSupervisorID)

	var gotCo companyModel.CompanyModel
	require.NoError(t, db.Where("company_id = ?", *got.PlacementCompanyID).First(&gotCo).Error)
	require.Equal(t, "CV Sumber Rejeki", gotCo.CompanyName)
	require.Equal(t, schoolID, gotCo.SchoolID)

	var gotSup companyModel.SupervisorModel
	require.NoError(t, db.Where("supervisor_id = ?", *got.PlacementSupervisorID).First(&gotSup).Error)
	require.Equal(t, "Pak Joko", gotSup.SupervisorName)
	require.Equal(t, *got.PlacementCompanyID, gotSup.SupervisorCompanyID)
}

func TestEmployerFormRejectsParentToken(t *testing.T) {
	db := openServiceTestDB(t)
	tokens := NewFormTokenService(db)
	svc := NewEmployerFormService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementPendingEmployer, nil, nil)
	tok, err := tokens.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeParentPermission, nil, nil)
	require.NoError(t, err)

	view, err := svc.InitializeForm(anonCtx("employer-form"), tok.FormToken)
	require.NoError(t, err)
	require.Nil(t, view)

	ok, err := svc.SubmitForm(anonCtx("employer-form"), tok.FormToken, employerSubmitReq())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEmployerFormSubmitRollsBackOnFailure(t *testing.T) {
	db := openServiceTestDB(t)
	tokens := NewFormTokenService(db)
	svc := NewEmployerFormService(db)

	schoolID := uuid.New()
	co := seedCompany(t, db, schoolID)
	// Supervisor menunjuk baris yang tidak ada → langkah supervisor gagal
	// SETELAH company ter-update di dalam transaksi.
	ghost := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementPendingEmployer, &co.CompanyID, &ghost)

	tok, err := tokens.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeEmployerAcceptance, nil, nil)
	require.NoError(t, err)

	_, err = svc.SubmitForm(anonCtx("employer-form"), tok.FormToken, employerSubmitReq())
	require.Error(t, err)

	// Rollback total: company kembali seperti semula, status tidak maju,
	// token masih hidup untuk dicoba ulang.
	var gotCo companyModel.CompanyModel
	require.NoError(t, db.Where("company_id = ?", co.CompanyID).First(&gotCo).Error)
	require.Equal(t, "Jl. Industri No. 8", *gotCo.CompanyAddress)
	require.Nil(t, gotCo.CompanyInsuranceProvider)

	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, model.PlacementPendingEmployer, got.PlacementStatus)
	require.Nil(t, got.PlacementEmployerSubmittedAt)

	alive, err := tokens.Validate(anonCtx("employer-form"), tok.FormToken)
	require.NoError(t, err)
	require.True(t, alive.IsValid())
}

func TestEmployerFormRollsBackAfterPlacementWrite(t *testing.T) {
	db := openServiceTestDB(t)
	tokens := NewFormTokenService(db)
	svc := NewEmployerFormService(db)

	schoolID := uuid.New()
	co := seedCompany(t, db, schoolID)
	sup := seedSupervisor(t, db, schoolID, co.CompanyID)
	p := seedPlacement(t, db, schoolID, model.PlacementPendingEmployer, &co.CompanyID, &sup.SupervisorID)

	tok, err := tokens.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeEmployerAcceptance, nil, nil)
	require.NoError(t, err)

	// Gagalkan write placements berikutnya: placement sudah ter-update di
	// dalam transaksi, token belum sempat dibakar. Didaftarkan SETELAH
	// Generate karena Generate juga menyentuh tabel placements.
	failNext := true
	require.NoError(t, db.Callback().Update().After("gorm:update").
		Register("uji:gagal_setelah_placement", func(d *gorm.DB) {
			if failNext && d.Statement.Table == "placements" && d.Error == nil {
				failNext = false
				_ = d.AddError(errors.New("listrik padam"))
			}
		}))

	_, err = svc.SubmitForm(anonCtx("employer-form"), tok.FormToken, employerSubmitReq())
	require.Error(t, err)

	// Rollback total meskipun gagalnya baru setelah placement tertulis:
	// status & stempel kembali, company bersih, token masih hidup.
	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, model.PlacementPendingEmployer, got.PlacementStatus)
	require.Nil(t, got.PlacementEmployerSubmittedAt)

	var gotCo companyModel.CompanyModel
	require.NoError(t, db.Where("company_id = ?", co.CompanyID).First(&gotCo).Error)
	require.Equal(t, "Jl. Industri No. 8", *gotCo.CompanyAddress)

	alive, err := tokens.Validate(anonCtx("employer-form"), tok.FormToken)
	require.NoError(t, err)
	require.True(t, alive.IsValid())
}

func TestEmployerFormInitialize(t *testing.T) {
	db := openServiceTestDB(t)
	tokens := NewFormTokenService(db)
	svc := NewEmployerFormService(db)

	schoolID := uuid.New()
	co := seedCompany(t, db, schoolID)
	sup := seedSupervisor(t, db, schoolID, co.CompanyID)
	p := seedPlacement(t, db, schoolID, model.PlacementPendingEmployer, &co.CompanyID, &sup.SupervisorID)

	tok, err := tokens.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeEmployerAcceptance, nil, nil)
	require.NoError(t, err)

	view, err := svc.InitializeForm(anonCtx("employer-form"), tok.FormToken)
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Equal(t, p.PlacementID.String(), view.PlacementID)
	require.Equal(t, "Andi Pratama", view.StudentName)
	require.Equal(t, "PT Maju Teknik", view.Company.CompanyName)
	require.Equal(t, "Pak Joko", view.Supervisor.SupervisorName)
	require.False(t, view.AlreadySubmitted)

	// Token tidak dikenal → nil, biar caller render halaman invalid.
	view, err = svc.InitializeForm(anonCtx("employer-form"), "token-ngawur")
	require.NoError(t, err)
	require.Nil(t, view)
}
