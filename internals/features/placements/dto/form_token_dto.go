// internals/features/placements/dto/form_token_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/placements/model"
)

// =======================================
// Request
// =======================================

type FormTokenGenerateRequest struct {
	FormTokenPlacementID uuid.UUID      `json:"form_token_placement_id" validate:"required"`
	FormTokenFormType    model.FormType `json:"form_token_form_type" validate:"required,oneof=employer_acceptance parent_permission"`
	FormTokenEmail       *string        `json:"form_token_email" validate:"omitempty,email"`
}

// =======================================
// Response
// =======================================

type FormTokenResponse struct {
	FormTokenID          uuid.UUID      `json:"form_token_id"`
	FormTokenPlacementID uuid.UUID      `json:"form_token_placement_id"`
	FormToken            string         `json:"form_token"`
	FormTokenFormType    model.FormType `json:"form_token_form_type"`
	FormTokenEmail       *string        `json:"form_token_email,omitempty"`
	FormTokenExpiresAt   time.Time      `json:"form_token_expires_at"`
	FormTokenUsedAt      *time.Time     `json:"form_token_used_at,omitempty"`
	FormTokenIsValid     bool           `json:"form_token_is_valid"`
	FormTokenRevoked     bool           `json:"form_token_revoked"`

	// URL siap kirim: {base}/{employer|parent}/form/{token}
	FormTokenURL string `json:"form_token_url,omitempty"`
}

func formPathSegment(t model.FormType) string {
	if t == model.FormTypeParentPermission {
		return "parent"
	}
	return "employer"
}

func NewFormTokenResponse(m *model.FormTokenModel, baseURL string) *FormTokenResponse {
	resp := &FormTokenResponse{
		FormTokenID:          m.FormTokenID,
		FormTokenPlacementID: m.FormTokenPlacementID,
		FormToken:            m.FormToken,
		FormTokenFormType:    m.FormTokenFormType,
		FormTokenEmail:       m.FormTokenEmail,
		FormTokenExpiresAt:   m.FormTokenExpiresAt,
		FormTokenUsedAt:      m.FormTokenUsedAt,
		FormTokenIsValid:     m.IsValid(),
		FormTokenRevoked:     m.IsDeleted(),
	}
	if baseURL != "" {
		resp.FormTokenURL = fmt.Sprintf("%s/%s/form/%s", baseURL, formPathSegment(m.FormTokenFormType), m.FormToken)
	}
	return resp
}

func NewFormTokenResponses(ms []model.FormTokenModel, baseURL string) []FormTokenResponse {
	out := make([]FormTokenResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewFormTokenResponse(&ms[i], baseURL))
	}
	return out
}
