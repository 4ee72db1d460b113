// internals/features/placements/service/form_token_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/placements/model"
	"magangku_backend/internals/persistence"
)

const (
	// 32 byte random ≈ 256 bit entropi; base64url tanpa padding = 43 char.
	formTokenBytes = 32

	formTokenTTL = 14 * 24 * time.Hour
)

// newFormToken: token URL-safe (alfabet A–Z a–z 0–9 - _), tanpa '='.
// Collision tidak dicek ulang; unique constraint di DB yang jaga.
func newFormToken() (string, error) {
	buf := make([]byte, formTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

type FormTokenService struct {
	db         *gorm.DB
	tokens     *persistence.Repo[model.FormTokenModel]
	placements *persistence.Repo[model.PlacementModel]
}

func NewFormTokenService(db *gorm.DB) *FormTokenService {
	return &FormTokenService{
		db:         db,
		tokens:     persistence.NewTenantRepo[model.FormTokenModel](db, "form_token_id"),
		placements: persistence.NewTenantRepo[model.PlacementModel](db, "placement_id"),
	}
}

// Generate: terbitkan token baru untuk satu placement + satu jenis form.
// Mengirim link employer pertama kali juga memajukan placement
// draft → pending_employer.
func (s *FormTokenService) Generate(ctx context.Context, placementID uuid.UUID, formType model.FormType, email *string, tenantID *uuid.UUID) (*model.FormTokenModel, error) {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !formType.Valid() {
		return nil, errors.New("jenis form tidak dikenal")
	}

	if _, err := s.placements.ByID(ctx, placementID, &tid); err != nil {
		return nil, err
	}

	raw, err := newFormToken()
	if err != nil {
		return nil, err
	}
	tok := &model.FormTokenModel{
		FormTokenPlacementID: placementID,
		FormToken:            raw,
		FormTokenFormType:    formType,
		FormTokenEmail:       email,
		FormTokenExpiresAt:   time.Now().Add(formTokenTTL),
	}
	tok.SchoolID = tid

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.tokens.WithTx(tx).Create(ctx, tok); err != nil {
			return err
		}
		if formType == model.FormTypeEmployerAcceptance {
			// Cek status dan tulis dalam satu statement — status yang sudah
			// maju lewat jalur lain tidak boleh dimajukan ulang.
			return tx.Model(&model.PlacementModel{}).
				Where("placement_id = ? AND placement_status = ?", placementID, model.PlacementDraft).
				Update("placement_status", model.PlacementPendingEmployer).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// Validate: lookup anonim — tanpa scope tenant dan ikut baris soft-deleted,
// supaya caller bisa membedakan "tidak ada" dari "ada tapi used/expired/
// revoked". Not found → (nil, nil); keputusan render di caller.
func (s *FormTokenService) Validate(ctx context.Context, token string) (*model.FormTokenModel, error) {
	var m model.FormTokenModel
	err := s.db.WithContext(ctx).
		Unscoped().
		Where("form_token = ?", token).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// MarkUsed: bakar token. Dipanggil TEPAT SEKALI per submit sukses, sebagai
// write terakhir di dalam transaksi submit — rollback berarti token tetap
// hidup dan submission bisa diulang.
func (s *FormTokenService) MarkUsed(ctx context.Context, tx *gorm.DB, tokenID uuid.UUID) error {
	res := tx.WithContext(ctx).Model(&model.FormTokenModel{}).
		Where("form_token_id = ? AND form_token_used_at IS NULL", tokenID).
		Update("form_token_used_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return persistence.ErrConcurrencyConflict
	}
	return nil
}

// Revoke: soft-delete token (state revoked, permanen).
func (s *FormTokenService) Revoke(ctx context.Context, tokenID uuid.UUID, tenantID *uuid.UUID) error {
	return s.tokens.Delete(ctx, tokenID, tenantID)
}

// GetByPlacement: daftar semua token milik satu placement, termasuk yang
// sudah revoked, untuk halaman kelola link di sisi staff.
func (s *FormTokenService) GetByPlacement(ctx context.Context, placementID uuid.UUID, tenantID *uuid.UUID) ([]model.FormTokenModel, error) {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var rows []model.FormTokenModel
	err = s.db.WithContext(ctx).
		Unscoped().
		Where("form_token_placement_id = ? AND school_id = ?", placementID, tid).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Resend: revoke semua token aktif sejenis lalu terbitkan yang baru.
// Dua langkah ini satu aksi staff, tapi tidak perlu atomik satu sama lain.
func (s *FormTokenService) Resend(ctx context.Context, placementID uuid.UUID, formType model.FormType, email *string, tenantID *uuid.UUID) (*model.FormTokenModel, error) {
	tid, err := persistence.ResolveTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var active []model.FormTokenModel
	err = s.tokens.Query(ctx, &tid).
		Where("form_token_placement_id = ? AND form_token_form_type = ? AND form_token_used_at IS NULL", placementID, formType).
		Find(&active).Error
	if err != nil {
		return nil, err
	}
	for i := range active {
		if err := s.tokens.Delete(ctx, active[i].FormTokenID, &tid); err != nil {
			return nil, err
		}
	}
	return s.Generate(ctx, placementID, formType, email, &tid)
}
