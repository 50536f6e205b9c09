package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/reports/catalog"
	"schooladmin_backend/internals/features/reports/controller"
	"schooladmin_backend/internals/middlewares"
)

func ReportAdminRoutes(admin fiber.Router, db *gorm.DB, cat *catalog.Catalog) {
	ctl := controller.NewReportController(db, cat)

	admin.Get("/reports/:type", middlewares.ReportRateLimiter(), ctl.GenerateReport)
	admin.Get("/fees/report", middlewares.ReportRateLimiter(), ctl.FeeReport)
}
