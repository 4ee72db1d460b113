// internals/features/students/service/student_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"magangku_backend/internals/features/students/model"
	"magangku_backend/internals/persistence"
)

func openStudentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, persistence.RegisterCallbacks(db))
	require.NoError(t, db.AutoMigrate(
		&model.CohortModel{},
		&model.StudentModel{},
	))
	return db
}

func adminCtx(schoolID uuid.UUID) context.Context {
	ctx := persistence.WithSchoolID(context.Background(), schoolID)
	return persistence.WithActor(ctx, "admin-sekolah")
}

func seedCohort(t *testing.T, db *gorm.DB, schoolID uuid.UUID, name string) *model.CohortModel {
	t.Helper()
	c := &model.CohortModel{CohortName: name, CohortYear: 2026}
	c.SchoolID = schoolID
	require.NoError(t, db.WithContext(adminCtx(schoolID)).Create(c).Error)
	return c
}

func TestStudentCreateWithCohort(t *testing.T) {
	db := openStudentTestDB(t)
	svc := NewStudentService(db)

	schoolID := uuid.New()
	cohort := seedCohort(t, db, schoolID, "XII TKR 1")

	st := &model.StudentModel{
		StudentFullName: "Andi Pratama",
		StudentCohortID: &cohort.CohortID,
	}
	require.NoError(t, svc.Create(adminCtx(schoolID), st, nil))
	require.Equal(t, schoolID, st.SchoolID)

	got, err := svc.GetByID(adminCtx(schoolID), st.StudentID, nil)
	require.NoError(t, err)
	require.Equal(t, "Andi Pratama", got.StudentFullName)
}

func TestStudentCreateRejectsCrossSchoolCohort(t *testing.T) {
	db := openStudentTestDB(t)
	svc := NewStudentService(db)

	schoolA := uuid.New()
	schoolB := uuid.New()
	cohortB := seedCohort(t, db, schoolB, "XII RPL 2")

	st := &model.StudentModel{
		StudentFullName: "Siti Rahma",
		StudentCohortID: &cohortB.CohortID,
	}
	err := svc.Create(adminCtx(schoolA), st, nil)
	require.ErrorIs(t, err, persistence.ErrCrossTenant)

	// Tidak ada baris nyasar yang tersimpan.
	rows, err := svc.GetAll(adminCtx(schoolA), nil)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestStudentUpdateRejectsCrossSchoolCohort(t *testing.T) {
	db := openStudentTestDB(t)
	svc := NewStudentService(db)

	schoolA := uuid.New()
	schoolB := uuid.New()
	cohortA := seedCohort(t, db, schoolA, "XII TKR 1")
	cohortB := seedCohort(t, db, schoolB, "XII RPL 2")

	st := &model.StudentModel{
		StudentFullName: "Andi Pratama",
		StudentCohortID: &cohortA.CohortID,
	}
	require.NoError(t, svc.Create(adminCtx(schoolA), st, nil))

	// Pindah cohort dalam satu school boleh.
	cohortA2 := seedCohort(t, db, schoolA, "XII TKR 2")
	st.StudentCohortID = &cohortA2.CohortID
	require.NoError(t, svc.Update(adminCtx(schoolA), st, nil, nil))

	// Pindah ke cohort school lain ditolak.
	fresh, err := svc.GetByID(adminCtx(schoolA), st.StudentID, nil)
	require.NoError(t, err)
	fresh.StudentCohortID = &cohortB.CohortID
	err = svc.Update(adminCtx(schoolA), fresh, nil, nil)
	require.ErrorIs(t, err, persistence.ErrCrossTenant)
}

func TestStudentUpdatePreservesTenantAndAudit(t *testing.T) {
	db := openStudentTestDB(t)
	svc := NewStudentService(db)

	schoolID := uuid.New()
	st := &model.StudentModel{StudentFullName: "Andi Pratama"}
	require.NoError(t, svc.Create(adminCtx(schoolID), st, nil))

	fresh, err := svc.GetByID(adminCtx(schoolID), st.StudentID, nil)
	require.NoError(t, err)

	// Payload "nakal" mencoba memindahkan siswa ke school lain.
	fresh.SchoolID = uuid.New()
	fresh.StudentFullName = "Andi P."
	require.NoError(t, svc.Update(adminCtx(schoolID), fresh, nil, nil))

	got, err := svc.GetByID(adminCtx(schoolID), st.StudentID, nil)
	require.NoError(t, err)
	require.Equal(t, schoolID, got.SchoolID)
	require.Equal(t, "Andi P.", got.StudentFullName)
	require.Equal(t, "admin-sekolah", got.CreatedBy)
}

func TestStudentUpdateStaleVersion(t *testing.T) {
	db := openStudentTestDB(t)
	svc := NewStudentService(db)

	schoolID := uuid.New()
	st := &model.StudentModel{StudentFullName: "Andi Pratama"}
	require.NoError(t, svc.Create(adminCtx(schoolID), st, nil))

	a, err := svc.GetByID(adminCtx(schoolID), st.StudentID, nil)
	require.NoError(t, err)
	b, err := svc.GetByID(adminCtx(schoolID), st.StudentID, nil)
	require.NoError(t, err)

	a.StudentFullName = "Versi Editor A"
	require.NoError(t, svc.Update(adminCtx(schoolID), a, nil, nil))

	b.StudentFullName = "Versi Editor B"
	err = svc.Update(adminCtx(schoolID), b, nil, nil)
	require.ErrorIs(t, err, persistence.ErrConcurrencyConflict)

	got, err := svc.GetByID(adminCtx(schoolID), st.StudentID, nil)
	require.NoError(t, err)
	require.Equal(t, "Versi Editor A", got.StudentFullName)
}
