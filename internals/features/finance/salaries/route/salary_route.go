package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/finance/salaries/controller"
)

func SalaryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSalaryController(db)

	g := admin.Group("/salaries")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Patch("/:id", ctl.Update)
	g.Post("/:id/pay", ctl.MarkPaid)
	g.Delete("/:id", ctl.Delete)
}
