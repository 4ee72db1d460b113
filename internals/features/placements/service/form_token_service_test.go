// internals/features/placements/service/form_token_service_test.go
package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"magangku_backend/internals/features/placements/model"
	"magangku_backend/internals/persistence"
)

// 32 byte base64url tanpa padding = tepat 43 karakter URL-safe.
var formTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{43}$`)

func TestGenerateEmployerToken(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementDraft, nil, nil)

	before := time.Now()
	tok, err := svc.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeEmployerAcceptance, strPtr("hrd@majuteknik.co.id"), nil)
	require.NoError(t, err)

	require.Regexp(t, formTokenPattern, tok.FormToken)
	require.True(t, tok.IsValid())
	require.Equal(t, schoolID, tok.SchoolID)

	// TTL 14 hari dari sekarang.
	require.WithinDuration(t, before.Add(14*24*time.Hour), tok.FormTokenExpiresAt, time.Minute)

	// Mengirim link employer pertama kali memajukan draft → pending_employer.
	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, model.PlacementPendingEmployer, got.PlacementStatus)
}

func TestGenerateParentTokenKeepsStatus(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementDraft, nil, nil)

	_, err := svc.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeParentPermission, nil, nil)
	require.NoError(t, err)

	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, model.PlacementDraft, got.PlacementStatus)
}

func TestGenerateRejectsUnknownFormType(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementDraft, nil, nil)

	_, err := svc.Generate(staffCtx(schoolID), p.PlacementID, model.FormType("teacher_visit"), nil, nil)
	require.Error(t, err)
}

func TestGenerateRequiresTenant(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	_, err := svc.Generate(context.Background(), uuid.New(), model.FormTypeEmployerAcceptance, nil, nil)
	require.ErrorIs(t, err, persistence.ErrTenantRequired)
}

func TestGenerateForPlacementOfOtherSchool(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	schoolA := uuid.New()
	schoolB := uuid.New()
	p := seedPlacement(t, db, schoolB, model.PlacementDraft, nil, nil)

	_, err := svc.Generate(staffCtx(schoolA), p.PlacementID, model.FormTypeEmployerAcceptance, nil, nil)
	require.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestGenerateEmployerTokenKeepsAdvancedStatus(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementPendingParent, nil, nil)

	// Kirim ulang link employer setelah alur sudah lewat fase employer:
	// token tetap terbit, status tidak boleh mundur ke pending_employer.
	_, err := svc.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeEmployerAcceptance, nil, nil)
	require.NoError(t, err)

	got := reloadPlacement(t, db, p.PlacementID)
	require.Equal(t, model.PlacementPendingParent, got.PlacementStatus)
}

func TestValidateUnknownToken(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	tok, err := svc.Validate(context.Background(), "tidak-pernah-diterbitkan")
	require.NoError(t, err)
	require.Nil(t, tok)
}

func TestExpiredTokenInvalid(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementPendingEmployer, nil, nil)
	tok, err := svc.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeEmployerAcceptance, nil, nil)
	require.NoError(t, err)

	// Mundurkan expiry ke masa lalu langsung di DB.
	require.NoError(t, db.Model(&model.FormTokenModel{}).
		Where("form_token_id = ?", tok.FormTokenID).
		Update("form_token_expires_at", time.Now().Add(-time.Hour)).Error)

	got, err := svc.Validate(context.Background(), tok.FormToken)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.IsValid())
}

func TestRevokedTokenStillVisibleButInvalid(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementDraft, nil, nil)
	tok, err := svc.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeParentPermission, nil, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(staffCtx(schoolID), tok.FormTokenID, nil))

	// Validate lookup unscoped: token revoked tetap ketemu (beda dengan
	// "tidak ada") tapi permanen tidak valid.
	got, err := svc.Validate(context.Background(), tok.FormToken)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.IsDeleted())
	require.False(t, got.IsValid())
}

func TestMarkUsedOnlyOnce(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementDraft, nil, nil)
	tok, err := svc.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeParentPermission, nil, nil)
	require.NoError(t, err)

	require.NoError(t, svc.MarkUsed(context.Background(), db, tok.FormTokenID))

	// Pembakaran kedua kalah race → konflik, bukan diam-diam sukses.
	err = svc.MarkUsed(context.Background(), db, tok.FormTokenID)
	require.ErrorIs(t, err, persistence.ErrConcurrencyConflict)

	got, err := svc.Validate(context.Background(), tok.FormToken)
	require.NoError(t, err)
	require.NotNil(t, got.FormTokenUsedAt)
	require.False(t, got.IsValid())
}

func TestResendRevokesActiveTokens(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewFormTokenService(db)

	schoolID := uuid.New()
	p := seedPlacement(t, db, schoolID, model.PlacementDraft, nil, nil)

	old, err := svc.Generate(staffCtx(schoolID), p.PlacementID, model.FormTypeParentPermission, nil, nil)
	require.NoError(t, err)

	fresh, err := svc.Resend(staffCtx(schoolID), p.PlacementID, model.FormTypeParentPermission, nil, nil)
	require.NoError(t, err)
	require.NotEqual(t, old.FormToken, fresh.FormToken)

	gotOld, err := svc.Validate(context.Background(), old.FormToken)
	require.NoError(t, err)
	require.False(t, gotOld.IsValid())

	gotFresh, err := svc.Validate(context.Background(), fresh.FormToken)
	require.NoError(t, err)
	require.True(t, gotFresh.IsValid())

	// Riwayat lengkap (termasuk yang revoked) tetap kelihatan di sisi staff.
	all, err := svc.GetByPlacement(staffCtx(schoolID), p.PlacementID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestNewFormTokenUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		tok, err := newFormToken()
		require.NoError(t, err)
		require.Regexp(t, formTokenPattern, tok)
		_, dup := seen[tok]
		require.False(t, dup)
		seen[tok] = struct{}{}
	}
}
