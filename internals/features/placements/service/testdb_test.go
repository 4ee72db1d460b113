// internals/features/placements/service/testdb_test.go
package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	companyModel "magangku_backend/internals/features/companies/model"
	"magangku_backend/internals/features/placements/model"
	studentModel "magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// :memory: hidup per-koneksi — kunci pool ke satu koneksi.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, persistence.RegisterCallbacks(db))
	require.NoError(t, db.AutoMigrate(
		&studentModel.StudentModel{},
		&studentModel.EmergencyContactModel{},
		&studentModel.StudentMedicalConditionModel{},
		&companyModel.CompanyModel{},
		&companyModel.SupervisorModel{},
		&model.PlacementModel{},
		&model.FormTokenModel{},
		&model.ParentPermissionModel{},
	))
	return db
}

func staffCtx(schoolID uuid.UUID) context.Context {
	ctx := persistence.WithSchoolID(context.Background(), schoolID)
	return persistence.WithActor(ctx, "staff-tu")
}

func anonCtx(actor string) context.Context {
	return persistence.WithActor(context.Background(), actor)
}

func strPtr(s string) *string { return &s }

// seedStudent: siswa minimal untuk dipakai placement.
func seedStudent(t *testing.T, db *gorm.DB, schoolID uuid.UUID) *studentModel.StudentModel {
	t.Helper()
	st := &studentModel.StudentModel{StudentFullName: "Andi Pratama"}
	st.SchoolID = schoolID
	require.NoError(t, db.WithContext(staffCtx(schoolID)).Create(st).Error)
	return st
}

func seedCompany(t *testing.T, db *gorm.DB, schoolID uuid.UUID) *companyModel.CompanyModel {
	t.Helper()
	co := &companyModel.CompanyModel{
		CompanyName:    "PT Maju Teknik",
		CompanyAddress: strPtr("Jl. Industri No. 8"),
	}
	co.SchoolID = schoolID
	require.NoError(t, db.WithContext(staffCtx(schoolID)).Create(co).Error)
	return co
}

func seedSupervisor(t *testing.T, db *gorm.DB, schoolID, companyID uuid.UUID) *companyModel.SupervisorModel {
	t.Helper()
	sup := &companyModel.SupervisorModel{
		SupervisorCompanyID: companyID,
		SupervisorName:      "Pak Joko",
	}
	sup.SchoolID = schoolID
	require.NoError(t, db.WithContext(staffCtx(schoolID)).Create(sup).Error)
	return sup
}

// seedPlacement: placement siap pakai; relasi company/supervisor opsional.
func seedPlacement(t *testing.T, db *gorm.DB, schoolID uuid.UUID, status model.PlacementStatus, companyID, supervisorID *uuid.UUID) *model.PlacementModel {
	t.Helper()
	st := seedStudent(t, db, schoolID)
	p := &model.PlacementModel{
		PlacementStudentID:    st.StudentID,
		PlacementCompanyID:    companyID,
		PlacementSupervisorID: supervisorID,
		PlacementStatus:       status,
		PlacementPosition:     strPtr("Teknisi Junior"),
	}
	p.SchoolID = schoolID
	require.NoError(t, db.WithContext(staffCtx(schoolID)).Create(p).Error)
	return p
}

func reloadPlacement(t *testing.T, db *gorm.DB, id uuid.UUID) *model.PlacementModel {
	t.Helper()
	var p model.PlacementModel
	require.NoError(t, db.Where("placement_id = ?", id).First(&p).Error)
	return &p
}
