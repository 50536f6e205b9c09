package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/employees/controller"
)

func EmployeeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewEmployeeController(db)

	g := admin.Group("/employees")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
