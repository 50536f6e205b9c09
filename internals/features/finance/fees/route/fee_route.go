package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/finance/fees/controller"
)

// FeeAdminRoutes must be mounted after the report routes so /fees/report wins over /fees/:id.
func FeeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewFeeController(db)

	g := admin.Group("/fees")
	g.Post("/", ctl.CreateFee)
	g.Get("/", ctl.GetAllFees)
	g.Delete("/", ctl.DeleteFeesByIds)
	g.Get("/:id", ctl.GetFee)
	g.Patch("/:id", ctl.UpdateFee)
}
