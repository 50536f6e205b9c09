package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/sessions/controller"
)

func SessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSessionController(db)

	g := admin.Group("/sessions")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/current", ctl.Current)
	g.Patch("/:id", ctl.Update)
	g.Post("/:id/current", ctl.SetCurrent)
	g.Delete("/:id", ctl.Delete)
}
