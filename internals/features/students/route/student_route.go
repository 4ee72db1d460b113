// internals/features/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/students/controller"
	"magangku_backend/internals/middlewares/auth"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	students := controller.NewStudentController(db)
	cohorts := controller.NewCohortController(db)
	children := controller.NewStudentChildrenController(db)

	adminOnly := auth.OnlyRolesSlice(constants.RoleErrorAdmin("data siswa"), constants.AdminAndAbove)

	// Rombel
	rc := r.Group("/cohorts", adminOnly)
	rc.Get("/", cohorts.GetAll)
	rc.Post("/", cohorts.Create)
	rc.Put("/:id", cohorts.Update)
	rc.Delete("/:id", cohorts.Delete)

	// Siswa
	rs := r.Group("/students", adminOnly)
	rs.Get("/", students.List)
	rs.Get("/:id", students.GetByID)
	rs.Post("/", students.Create)
	rs.Put("/:id", students.Update)
	rs.Delete("/:id", students.Delete)
	rs.Post("/:id/restore", students.Restore)

	// Anak-anak siswa
	rs.Get("/:studentId/emergency-contacts", children.GetEmergencyContacts)
	rs.Post("/:studentId/emergency-contacts", children.CreateEmergencyContact)
	rs.Put("/:studentId/emergency-contacts/:id", children.UpdateEmergencyContact)
	rs.Delete("/:studentId/emergency-contacts/:id", children.DeleteEmergencyContact)

	rs.Get("/:studentId/medical-conditions", children.GetMedicalConditions)
	rs.Post("/:studentId/medical-conditions", children.CreateMedicalCondition)
	rs.Delete("/:studentId/medical-conditions/:id", children.DeleteMedicalCondition)

	rs.Get("/:studentId/work-histories", children.GetWorkHistories)
	rs.Post("/:studentId/work-histories", children.CreateWorkHistory)
	rs.Put("/:studentId/work-histories/:id", children.UpdateWorkHistory)
	rs.Delete("/:studentId/work-histories/:id", children.DeleteWorkHistory)
}
