// internals/persistence/repository_test.go
package persistence

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// noteModel: entity mini khusus test gateway — cukup PK + satu kolom domain
// + blok tenant/audit, biar perilaku callback kelihatan tanpa bawa-bawa
// model fitur.
type noteModel struct {
	NoteID    uuid.UUID `gorm:"column:note_id;type:uuid;primaryKey"`
	NoteTitle string    `gorm:"column:note_title;type:varchar(120);not null"`

	TenantColumns
	AuditColumns
}

func (noteModel) TableName() string { return "notes" }

func (m *noteModel) BeforeCreate(tx *gorm.DB) error {
	if m.NoteID == uuid.Nil {
		m.NoteID = uuid.New()
	}
	return nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// :memory: hidup per-koneksi; pool harus dikunci ke satu koneksi
	// supaya semua query melihat database yang sama.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, RegisterCallbacks(db))
	require.NoError(t, db.AutoMigrate(&noteModel{}))
	return db
}

func scopedCtx(schoolID uuid.UUID, actor string) context.Context {
	ctx := context.Background()
	ctx = WithSchoolID(ctx, schoolID)
	return WithActor(ctx, actor)
}

func TestCreateStampsAuditAndTenant(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	schoolID := uuid.New()
	ctx := scopedCtx(schoolID, "budi")

	m := &noteModel{NoteTitle: "catatan pertama"}
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.ByID(ctx, m.NoteID, nil)
	require.NoError(t, err)
	require.Equal(t, "budi", got.CreatedBy)
	require.Equal(t, schoolID, got.SchoolID)
	require.False(t, got.CreatedAt.IsZero())

	// Belum pernah di-update → kolom update masih kosong.
	require.Nil(t, got.UpdatedAt)
	require.Nil(t, got.UpdatedBy)
	require.EqualValues(t, 1, got.GetRowVersion())
}

func TestCreateFallsBackToSystemActor(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	schoolID := uuid.New()
	m := &noteModel{NoteTitle: "tanpa login"}
	m.SchoolID = schoolID

	require.NoError(t, repo.Create(context.Background(), m))

	got, err := repo.ByID(context.Background(), m.NoteID, &schoolID)
	require.NoError(t, err)
	require.Equal(t, ActorSystem, got.CreatedBy)
}

func TestCreateWithoutTenantFails(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	m := &noteModel{NoteTitle: "yatim"}
	err := repo.Create(context.Background(), m)
	require.ErrorIs(t, err, ErrTenantRequired)
}

func TestExplicitTenantSetOnModelWins(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	ctxSchool := uuid.New()
	otherSchool := uuid.New()
	ctx := scopedCtx(ctxSchool, "budi")

	m := &noteModel{NoteTitle: "pindahan"}
	m.SchoolID = otherSchool
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.ByID(ctx, m.NoteID, &otherSchool)
	require.NoError(t, err)
	require.Equal(t, otherSchool, got.SchoolID)
}

func TestUpdateStampsAndBumpsVersion(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	ctx := scopedCtx(uuid.New(), "budi")
	m := &noteModel{NoteTitle: "awal"}
	require.NoError(t, repo.Create(ctx, m))

	ctx2 := scopedCtx(m.SchoolID, "sari")
	m.NoteTitle = "revisi"
	require.NoError(t, repo.Update(ctx2, m, nil))

	got, err := repo.ByID(ctx2, m.NoteID, nil)
	require.NoError(t, err)
	require.Equal(t, "revisi", got.NoteTitle)
	require.NotNil(t, got.UpdatedAt)
	require.NotNil(t, got.UpdatedBy)
	require.Equal(t, "sari", *got.UpdatedBy)
	require.EqualValues(t, 2, got.GetRowVersion())

	// Jejak create tidak tersentuh.
	require.Equal(t, "budi", got.CreatedBy)
}

func TestUpdateStaleVersionConflict(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	ctx := scopedCtx(uuid.New(), "budi")
	m := &noteModel{NoteTitle: "awal"}
	require.NoError(t, repo.Create(ctx, m))

	// Writer lain menang duluan → versi di DB sudah 2.
	first, err := repo.ByID(ctx, m.NoteID, nil)
	require.NoError(t, err)
	first.NoteTitle = "punya writer A"
	require.NoError(t, repo.Update(ctx, first, nil))

	// Writer B masih pegang versi 1.
	stale := int64(1)
	m.NoteTitle = "punya writer B"
	err = repo.Update(ctx, m, &stale)
	require.ErrorIs(t, err, ErrConcurrencyConflict)

	// Konflik tidak boleh mengubah apa pun.
	got, err := repo.ByID(ctx, m.NoteID, nil)
	require.NoError(t, err)
	require.Equal(t, "punya writer A", got.NoteTitle)
	require.EqualValues(t, 2, got.GetRowVersion())
}

func TestSoftDeleteAndRestore(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	ctx := scopedCtx(uuid.New(), "budi")
	m := &noteModel{NoteTitle: "akan dihapus"}
	require.NoError(t, repo.Create(ctx, m))

	ctxDel := scopedCtx(m.SchoolID, "sari")
	require.NoError(t, repo.Delete(ctxDel, m.NoteID, nil))

	// Query normal tidak melihat baris terhapus.
	_, err := repo.ByID(ctxDel, m.NoteID, nil)
	require.ErrorIs(t, err, ErrNotFound)

	ok, err := repo.Exists(ctxDel, m.NoteID, nil)
	require.NoError(t, err)
	require.False(t, ok)

	// Jalur unscoped masih bisa — lengkap dengan jejak siapa yang hapus.
	raw, err := repo.ByIDUnscoped(ctxDel, m.NoteID, nil)
	require.NoError(t, err)
	require.True(t, raw.IsDeleted())
	require.NotNil(t, raw.DeletedBy)
	require.Equal(t, "sari", *raw.DeletedBy)

	// Restore mengembalikan ke Active dan membersihkan jejak delete.
	require.NoError(t, repo.Restore(ctxDel, m.NoteID, nil))
	back, err := repo.ByID(ctxDel, m.NoteID, nil)
	require.NoError(t, err)
	require.False(t, back.IsDeleted())
	require.Nil(t, back.DeletedBy)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	ctx := scopedCtx(uuid.New(), "budi")
	m := &noteModel{NoteTitle: "sekali hapus cukup"}
	require.NoError(t, repo.Create(ctx, m))

	require.NoError(t, repo.Delete(ctx, m.NoteID, nil))
	require.NoError(t, repo.Delete(ctx, m.NoteID, nil))

	// Baris yang tidak pernah ada juga bukan error.
	require.NoError(t, repo.Delete(ctx, uuid.New(), nil))
}

func TestTenantIsolation(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	schoolA := uuid.New()
	schoolB := uuid.New()

	a := &noteModel{NoteTitle: "milik A"}
	require.NoError(t, repo.Create(scopedCtx(schoolA, "adminA"), a))
	b := &noteModel{NoteTitle: "milik B"}
	require.NoError(t, repo.Create(scopedCtx(schoolB, "adminB"), b))

	rows, err := repo.All(context.Background(), &schoolA)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "milik A", rows[0].NoteTitle)

	// Baris school lain tidak bisa diambil dari scope A —
	// hasilnya sama seperti tidak ada.
	_, err = repo.ByID(context.Background(), b.NoteID, &schoolA)
	require.ErrorIs(t, err, ErrNotFound)

	ok, err := repo.Exists(context.Background(), b.NoteID, &schoolA)
	require.NoError(t, err)
	require.False(t, ok)

	// Argumen eksplisit menang atas context.
	rows, err = repo.All(scopedCtx(schoolA, "adminA"), &schoolB)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "milik B", rows[0].NoteTitle)
}

func TestDeleteScopedToTenant(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	schoolA := uuid.New()
	schoolB := uuid.New()
	b := &noteModel{NoteTitle: "milik B"}
	require.NoError(t, repo.Create(scopedCtx(schoolB, "adminB"), b))

	// Admin A mencoba hapus baris B: diam-diam no-op.
	require.NoError(t, repo.Delete(scopedCtx(schoolA, "adminA"), b.NoteID, nil))

	got, err := repo.ByID(context.Background(), b.NoteID, &schoolB)
	require.NoError(t, err)
	require.False(t, got.IsDeleted())
}

func TestPage(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepo[noteModel](db, "note_id")

	schoolID := uuid.New()
	ctx := scopedCtx(schoolID, "budi")
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, repo.Create(ctx, &noteModel{NoteTitle: title}))
	}
	// Baris school lain tidak ikut dihitung.
	require.NoError(t, repo.Create(scopedCtx(uuid.New(), "x"), &noteModel{NoteTitle: "z"}))

	rows, total, err := repo.Page(ctx, nil, "note_title ASC", 2, 2)
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Len(t, rows, 2)
	require.Equal(t, "c", rows[0].NoteTitle)
	require.Equal(t, "d", rows[1].NoteTitle)
}

func TestResolveTenant(t *testing.T) {
	explicit := uuid.New()
	fromCtx := uuid.New()
	ctx := WithSchoolID(context.Background(), fromCtx)

	got, err := ResolveTenant(ctx, &explicit)
	require.NoError(t, err)
	require.Equal(t, explicit, got)

	got, err = ResolveTenant(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, fromCtx, got)

	_, err = ResolveTenant(context.Background(), nil)
	require.ErrorIs(t, err, ErrTenantRequired)
}
