// internals/features/placements/controller/public_form_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/placements/dto"
	"magangku_backend/internals/features/placements/service"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

/* ===============================
   Endpoint publik untuk pengisi form eksternal (tanpa login).
   Token di URL adalah satu-satunya kredensial. Semua kegagalan
   dipulangkan sebagai halaman ramah (404 / 410), bukan stack trace.
=================================*/

type PublicFormController struct {
	tokens    *service.FormTokenService
	employers *service.EmployerFormService
	parents   *service.ParentFormService
}

func NewPublicFormController(db *gorm.DB) *PublicFormController {
	return &PublicFormController{
		tokens:    service.NewFormTokenService(db),
		employers: service.NewEmployerFormService(db),
		parents:   service.NewParentFormService(db),
	}
}

// tokenState: bedakan "tidak ada" dari "ada tapi mati" supaya halaman
// publik bisa menampilkan pesan yang tepat.
func (ctl *PublicFormController) tokenState(c *fiber.Ctx, token string) (ok bool, resp error) {
	tok, err := ctl.tokens.Validate(c.UserContext(), token)
	if err != nil {
		return false, helper.FromServiceError(err)
	}
	if tok == nil {
		return false, helper.Error(c, fiber.StatusNotFound, "Link form tidak ditemukan")
	}
	if !tok.IsValid() {
		return false, helper.Error(c, fiber.StatusGone, "Link form sudah tidak berlaku (kedaluwarsa, sudah dipakai, atau dicabut)")
	}
	return true, nil
}

// ===== Employer form =====

// GET /api/public/employer/form/:token
func (ctl *PublicFormController) InitEmployerForm(c *fiber.Ctx) error {
	token := c.Params("token")
	if ok, resp := ctl.tokenState(c, token); !ok {
		return resp
	}
	ctx := helperAuth.AnonymousScope(c, "employer-form")

	form, err := ctl.employers.InitializeForm(ctx, token)
	if err != nil {
		return helper.FromServiceError(err)
	}
	if form == nil {
		return helper.Error(c, fiber.StatusNotFound, "Data penempatan untuk link ini tidak ditemukan")
	}
	return helper.Success(c, "Form employer", form)
}

// POST /api/public/employer/form/:token
func (ctl *PublicFormController) SubmitEmployerForm(c *fiber.Ctx) error {
	token := c.Params("token")
	if ok, resp := ctl.tokenState(c, token); !ok {
		return resp
	}
	var req dto.EmployerFormSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.AnonymousScope(c, "employer-form")

	ok, err := ctl.employers.SubmitForm(ctx, token, &req)
	if err != nil {
		return helper.FromServiceError(err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusGone, "Link form sudah tidak berlaku")
	}
	return helper.Success(c, "Form employer berhasil dikirim. Terima kasih!", nil)
}

// ===== Parent form =====

// GET /api/public/parent/form/:token
func (ctl *PublicFormController) InitParentForm(c *fiber.Ctx) error {
	token := c.Params("token")
	if ok, resp := ctl.tokenState(c, token); !ok {
		return resp
	}
	ctx := helperAuth.AnonymousScope(c, "parent-form")

	form, err := ctl.parents.InitializeForm(ctx, token)
	if err != nil {
		return helper.FromServiceError(err)
	}
	if form == nil {
		return helper.Error(c, fiber.StatusNotFound, "Data penempatan untuk link ini tidak ditemukan")
	}
	return helper.Success(c, "Form orang tua", form)
}

// POST /api/public/parent/form/:token
func (ctl *PublicFormController) SubmitParentForm(c *fiber.Ctx) error {
	token := c.Params("token")
	if ok, resp := ctl.tokenState(c, token); !ok {
		return resp
	}
	var req dto.ParentFormSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	ctx := helperAuth.AnonymousScope(c, "parent-form")

	ok, err := ctl.parents.SubmitForm(ctx, token, &req)
	if err != nil {
		return helper.FromServiceError(err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusGone, "Link form sudah tidak berlaku")
	}
	return helper.Success(c, "Form orang tua berhasil dikirim. Terima kasih!", nil)
}
