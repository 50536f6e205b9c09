package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/finance/student_fees/controller"
)

func StudentFeeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentFeeController(db)

	g := admin.Group("/student-fees")
	g.Post("/", ctl.AssignFeeToStudent)
	g.Get("/", ctl.GetStudentFees)
	g.Get("/by-class", ctl.GetFeeAssignmentsByClassAndSession)
	g.Get("/summary", ctl.Summary)
	g.Patch("/:id", ctl.UpdateFeeAssignment)
	g.Delete("/:id", ctl.RemoveFeeAssignment)
}
