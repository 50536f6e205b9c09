package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/subjects/controller"
)

func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	g := admin.Group("/subjects")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
