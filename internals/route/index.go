// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/configs"
	companyRoute "magangku_backend/internals/features/companies/route"
	logbookRoute "magangku_backend/internals/features/logbooks/route"
	placementRoute "magangku_backend/internals/features/placements/route"
	schoolRoute "magangku_backend/internals/features/schools/route"
	studentRoute "magangku_backend/internals/features/students/route"
	middlewares "magangku_backend/internals/middlewares"
	"magangku_backend/internals/middlewares/auth"
)

/* ===============================
   Peta route:
   /api/a       → staff (JWT + role gate per feature)
   /api/u       → publik ringan (lookup sekolah)
   /api/public  → form eksternal bertoken (rate-limit ketat)
=================================*/

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===== Staff =====
	a := api.Group("/a", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	schoolRoute.SchoolAdminRoutes(a, db)
	studentRoute.StudentAdminRoutes(a, db)
	companyRoute.CompanyAdminRoutes(a, db)
	placementRoute.PlacementAdminRoutes(a, db)
	logbookRoute.LogbookAdminRoutes(a, db)

	// ===== Publik ringan =====
	u := api.Group("/u")
	schoolRoute.SchoolPublicRoutes(u, db)

	// ===== Form eksternal (anonim, bertoken) =====
	p := api.Group("/public", middlewares.PublicFormRateLimiter())
	placementRoute.FormPublicRoutes(p, db)
}
