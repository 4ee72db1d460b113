// internals/persistence/scope.go
package persistence

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	ctxKeyActor ctxKey = iota
	ctxKeySchoolID
)

// ActorSystem dipakai saat tidak ada user login (job internal, seeder, dsb.)
const ActorSystem = "system"

/* ===============================
   Scope request (actor + tenant)
   Nilai selalu lewat context — tidak ada singleton global.
=================================*/

// WithActor menyimpan username aktif ke context (dipakai untuk audit stamping).
func WithActor(ctx context.Context, username string) context.Context {
	if username == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyActor, username)
}

// ActorFrom membaca username aktif; fallback "system" kalau tidak ada.
func ActorFrom(ctx context.Context) string {
	if ctx == nil {
		return ActorSystem
	}
	if v, ok := ctx.Value(ctxKeyActor).(string); ok && v != "" {
		return v
	}
	return ActorSystem
}

// WithSchoolID menyimpan tenant (school) aktif ke context.
func WithSchoolID(ctx context.Context, schoolID uuid.UUID) context.Context {
	if schoolID == uuid.Nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKeySchoolID, schoolID)
}

// SchoolIDFrom membaca tenant aktif. ok=false artinya request tanpa konteks
// school (mis. pengisi form eksternal lewat token).
func SchoolIDFrom(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	if v, ok := ctx.Value(ctxKeySchoolID).(uuid.UUID); ok && v != uuid.Nil {
		return v, true
	}
	return uuid.Nil, false
}

// ResolveTenant: tenant eksplisit caller menang atas context.
// Tidak ada dua-duanya = ErrTenantRequired (operasi tulis jangan lanjut).
func ResolveTenant(ctx context.Context, tenantID *uuid.UUID) (uuid.UUID, error) {
	if tenantID != nil && *tenantID != uuid.Nil {
		return *tenantID, nil
	}
	if sid, ok := SchoolIDFrom(ctx); ok {
		return sid, nil
	}
	return uuid.Nil, ErrTenantRequired
}
