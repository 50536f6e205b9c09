package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/reports/catalog"
	"schooladmin_backend/internals/features/reports/service"
)

type ReportController struct {
	svc *service.ReportService
}

func NewReportController(db *gorm.DB, cat *catalog.Catalog) *ReportController {
	return &ReportController{svc: service.NewReportService(db, cat)}
}

// GET /api/a/reports/:type?format=pdf|xlsx
func (ctl *ReportController) GenerateReport(c *fiber.Ctx) error {
	return ctl.send(c, c.Params("type"))
}

// GET /api/a/fees/report?format=pdf|xlsx
func (ctl *ReportController) FeeReport(c *fiber.Ctx) error {
	return ctl.send(c, "fees")
}

func (ctl *ReportController) send(c *fiber.Ctx, reportType string) error {
	doc, err := ctl.svc.Generate(c.UserContext(), reportType, c.Query("format"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Status(fiber.StatusOK).Send(doc.Body)
}
