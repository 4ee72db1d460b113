// internals/features/schools/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/schools/controller"
	"magangku_backend/internals/middlewares/auth"
)

// SchoolAdminRoutes: kelola tenant — khusus owner.
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolController(db)

	g := r.Group("/schools",
		auth.OnlyRolesSlice(constants.RoleErrorOwner("kelola sekolah"), constants.OwnerOnly),
	)
	g.Get("/", ctl.GetAll)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/restore", ctl.Restore)
}

// SchoolPublicRoutes: lookup sekolah by slug untuk landing page.
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolController(db)
	r.Get("/schools/slug/:slug", ctl.GetBySlug)
}
