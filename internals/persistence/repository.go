// internals/persistence/repository.go
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===============================
   Repo generik (tenant-aware)
   Satu pintu untuk create/update/delete semua entity. Kemampuan per-type
   (tenant-scoped atau tidak) didaftarkan eksplisit di constructor, bukan
   lewat scanning runtime.
=================================*/

type Repo[T any] struct {
	db     *gorm.DB
	pkCol  string
	tenant bool
}

// NewRepo: untuk entity global (tidak terikat school), mis. tabel schools.
func NewRepo[T any](db *gorm.DB, pkCol string) *Repo[T] {
	return &Repo[T]{db: db, pkCol: pkCol}
}

// NewTenantRepo: untuk entity ber-school_id; semua query otomatis dibatasi
// ke school yang sedang aktif.
func NewTenantRepo[T any](db *gorm.DB, pkCol string) *Repo[T] {
	return &Repo[T]{db: db, pkCol: pkCol, tenant: true}
}

// WithTx: clone repo di atas transaksi yang sedang berjalan.
func (r *Repo[T]) WithTx(tx *gorm.DB) *Repo[T] {
	return &Repo[T]{db: tx, pkCol: r.pkCol, tenant: r.tenant}
}

// scoped: batasi query ke tenant. Prioritas: argumen eksplisit → context.
// Dua-duanya kosong = query tanpa batas tenant (jalur anonim via token).
func (r *Repo[T]) scoped(ctx context.Context, q *gorm.DB, tenantID *uuid.UUID) *gorm.DB {
	if !r.tenant {
		return q
	}
	if tenantID != nil && *tenantID != uuid.Nil {
		return q.Where("school_id = ?", *tenantID)
	}
	if sid, ok := SchoolIDFrom(ctx); ok {
		return q.Where("school_id = ?", sid)
	}
	return q
}

func (r *Repo[T]) query(ctx context.Context, tenantID *uuid.UUID) *gorm.DB {
	return r.scoped(ctx, r.db.WithContext(ctx).Model(new(T)), tenantID)
}

// Query: builder ber-scope tenant untuk filter kustom di service/controller.
func (r *Repo[T]) Query(ctx context.Context, tenantID *uuid.UUID) *gorm.DB {
	return r.query(ctx, tenantID)
}

/* ===============================
   Reads
=================================*/

func (r *Repo[T]) All(ctx context.Context, tenantID *uuid.UUID) ([]T, error) {
	var rows []T
	if err := r.query(ctx, tenantID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Page: listing dengan limit/offset + total count. order sudah harus
// tervalidasi caller (whitelist kolom), jangan terima input mentah.
func (r *Repo[T]) Page(ctx context.Context, tenantID *uuid.UUID, order string, limit, offset int) ([]T, int64, error) {
	var total int64
	if err := r.query(ctx, tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []T
	q := r.query(ctx, tenantID)
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *Repo[T]) ByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*T, error) {
	var m T
	err := r.query(ctx, tenantID).Where(r.pkCol+" = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ByIDUnscoped: jalur diagnostik/admin — ikut membaca baris soft-deleted.
func (r *Repo[T]) ByIDUnscoped(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (*T, error) {
	var m T
	q := r.scoped(ctx, r.db.WithContext(ctx).Unscoped().Model(new(T)), tenantID)
	err := q.Where(r.pkCol+" = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repo[T]) Exists(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (bool, error) {
	var n int64
	if err := r.query(ctx, tenantID).Where(r.pkCol+" = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

/* ===============================
   Writes
=================================*/

func (r *Repo[T]) Create(ctx context.Context, m *T) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update: simpan m utuh. expectedVersion opsional — kalau diisi, write hanya
// lolos bila versi tersimpan masih sama (compare-and-swap di level SQL lewat
// optimisticlock). Konflik tidak di-retry di sini; keputusan di caller.
func (r *Repo[T]) Update(ctx context.Context, m *T, expectedVersion *int64) error {
	if v, ok := any(m).(Versioned); ok && expectedVersion != nil {
		v.SetRowVersion(*expectedVersion)
	}
	// Bukan Save: saat klausa versi match 0 baris, Save jatuh ke upsert
	// (INSERT ON CONFLICT DO UPDATE) yang menimpa baris dengan data basi.
	// UPDATE murni membuat versi basi muncul sebagai RowsAffected == 0.
	res := r.db.WithContext(ctx).Model(m).Select("*").Omit(r.pkCol).Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrencyConflict
	}
	if v, ok := any(m).(Versioned); ok {
		v.SetRowVersion(v.GetRowVersion() + 1)
	}
	return nil
}

// Delete: selalu soft delete (state transition, bukan hapus baris).
// Idempoten: baris tidak ada / beda school / sudah terhapus → bukan error.
func (r *Repo[T]) Delete(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	actor := ActorFrom(ctx)
	return r.query(ctx, tenantID).
		Where(r.pkCol+" = ?", id).
		Updates(map[string]any{
			"deleted_at": time.Now(),
			"deleted_by": actor,
		}).Error
}

// Restore: balikkan baris soft-deleted ke Active.
func (r *Repo[T]) Restore(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	q := r.scoped(ctx, r.db.WithContext(ctx).Unscoped().Model(new(T)), tenantID)
	return q.Where(r.pkCol+" = ?", id).
		Updates(map[string]any{
			"deleted_at": nil,
			"deleted_by": nil,
		}).Error
}
