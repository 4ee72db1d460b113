// internals/features/placements/route/placement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/placements/controller"
	"magangku_backend/internals/middlewares/auth"
)

func PlacementAdminRoutes(r fiber.Router, db *gorm.DB) {
	placements := controller.NewPlacementController(db)
	tokens := controller.NewFormTokenController(db)

	g := r.Group("/placements",
		auth.OnlyRolesSlice(constants.RoleErrorTeacher("penempatan magang"), constants.TeacherAndAbove),
	)
	g.Get("/", placements.List)
	g.Get("/:id", placements.GetByID)
	g.Post("/", placements.Create)
	g.Put("/:id", placements.Update)
	g.Delete("/:id", placements.Delete)
	g.Post("/:id/restore", placements.Restore)

	// Kelola link form eksternal
	g.Get("/:placementId/form-tokens", tokens.GetByPlacement)
	g.Post("/:placementId/form-tokens", tokens.Generate)
	g.Post("/:placementId/form-tokens/resend", tokens.Resend)
	g.Delete("/:placementId/form-tokens/:id", tokens.Revoke)
}

// FormPublicRoutes: endpoint anonim untuk pengisi form bertoken.
func FormPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPublicFormController(db)

	r.Get("/employer/form/:token", ctl.InitEmployerForm)
	r.Post("/employer/form/:token", ctl.SubmitEmployerForm)
	r.Get("/parent/form/:token", ctl.InitParentForm)
	r.Post("/parent/form/:token", ctl.SubmitParentForm)
}
