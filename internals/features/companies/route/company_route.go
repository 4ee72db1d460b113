// internals/features/companies/route/company_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/companies/controller"
	"magangku_backend/internals/middlewares/auth"
)

func CompanyAdminRoutes(r fiber.Router, db *gorm.DB) {
	companies := controller.NewCompanyController(db)
	supervisors := controller.NewSupervisorController(db)

	g := r.Group("/companies",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("data DUDI"), constants.AdminAndAbove),
	)
	g.Get("/", companies.List)
	g.Get("/:id", companies.GetByID)
	g.Post("/", companies.Create)
	g.Put("/:id", companies.Update)
	g.Delete("/:id", companies.Delete)
	g.Post("/:id/restore", companies.Restore)

	g.Get("/:companyId/supervisors", supervisors.GetByCompany)
	g.Post("/:companyId/supervisors", supervisors.Create)
	g.Put("/:companyId/supervisors/:id", supervisors.Update)
	g.Delete("/:companyId/supervisors/:id", supervisors.Delete)
}
