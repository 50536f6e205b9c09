// internals/route/details/finance_routes.go
package details

import (
	FeeRoutes "schooladmin_backend/internals/features/finance/fees/route"
	SalaryRoutes "schooladmin_backend/internals/features/finance/salaries/route"
	StudentFeeRoutes "schooladmin_backend/internals/features/finance/student_fees/route"
	ReportRoutes "schooladmin_backend/internals/features/reports/route"
	"schooladmin_backend/internals/features/reports/catalog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== ADMIN ===================== */
// reports first: /fees/report must be matched before /fees/:id
func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB, cat *catalog.Catalog) {
	ReportRoutes.ReportAdminRoutes(admin, db, cat)
	FeeRoutes.FeeAdminRoutes(admin, db)
	StudentFeeRoutes.StudentFeeAdminRoutes(admin, db)
	SalaryRoutes.SalaryAdminRoutes(admin, db)
}
