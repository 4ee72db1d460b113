// internals/features/logbooks/route/logbook_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/logbooks/controller"
	"magangku_backend/internals/middlewares/auth"
)

func LogbookAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLogbookController(db)

	teacherUp := auth.OnlyRolesSlice(constants.RoleErrorTeacher("logbook magang"), constants.TeacherAndAbove)

	// Katalog tugas
	rt := r.Group("/logbook-tasks", teacherUp)
	rt.Get("/", ctl.GetTasks)
	rt.Post("/", ctl.CreateTask)
	rt.Put("/:id", ctl.UpdateTask)
	rt.Delete("/:id", ctl.DeleteTask)

	// Jurnal & penilaian, nested di placement
	rp := r.Group("/placements/:placementId", teacherUp)
	rp.Get("/logbook-entries", ctl.GetEntries)
	rp.Post("/logbook-entries", ctl.CreateEntry)
	rp.Put("/logbook-entries/:id", ctl.UpdateEntry)
	rp.Delete("/logbook-entries/:id", ctl.DeleteEntry)

	rp.Get("/logbook-evaluations", ctl.GetEvaluations)
	rp.Post("/logbook-evaluations", ctl.CreateEvaluation)
	rp.Delete("/logbook-evaluations/:id", ctl.DeleteEvaluation)
}
