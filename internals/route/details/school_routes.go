// internals/route/details/school_routes.go
package details

import (
	ClassRoutes "schooladmin_backend/internals/features/academics/classes/route"
	SessionRoutes "schooladmin_backend/internals/features/academics/sessions/route"
	SubjectRoutes "schooladmin_backend/internals/features/academics/subjects/route"
	EmployeeRoutes "schooladmin_backend/internals/features/employees/route"
	StudentRoutes "schooladmin_backend/internals/features/students/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== ADMIN ===================== */
// registration, sessions, classes (with enrollment) and subjects
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	StudentRoutes.StudentAdminRoutes(admin, db)
	EmployeeRoutes.EmployeeAdminRoutes(admin, db)
	SessionRoutes.SessionAdminRoutes(admin, db)
	ClassRoutes.ClassAdminRoutes(admin, db)
	SubjectRoutes.SubjectAdminRoutes(admin, db)
}
