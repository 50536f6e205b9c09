package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/classes/controller"
)

func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db)
	enroll := controller.NewEnrollmentController(db)

	g := admin.Group("/classes")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)

	// subjects taught in the class
	g.Post("/:id/subjects", ctl.AssignSubject)
	g.Get("/:id/subjects", ctl.ListSubjects)
	g.Delete("/:id/subjects/:subject_id", ctl.RemoveSubject)

	// enrollment
	g.Post("/:id/students", enroll.AddToClass)
	g.Get("/:id/students", enroll.ListStudents)
	g.Delete("/:id/students", enroll.RemoveStudents)
}
