package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/classes/dto"
	"schooladmin_backend/internals/features/academics/classes/service"
	helper "schooladmin_backend/internals/helpers"
)

type EnrollmentController struct {
	svc *service.EnrollmentService
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{svc: service.NewEnrollmentService(db)}
}

// POST /api/a/classes/:id/students
func (ctl *EnrollmentController) AddToClass(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.AddToClassRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	link, err := ctl.svc.AddToClass(c.UserContext(), classID, req.StudentID, req.SessionID)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "student added to class", link)
}

// GET /api/a/classes/:id/students?session_id=
func (ctl *EnrollmentController) ListStudents(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	sessionID, err := helper.ParseUUIDQuery(c, "session_id")
	if err != nil {
		return err
	}

	var rows []dto.EnrollmentRow
	if sessionID == nil {
		rows, err = ctl.svc.GetStudentsInClass(c.UserContext(), classID)
	} else {
		rows, err = ctl.svc.GetStudentsByClassAndSession(c.UserContext(), classID, *sessionID)
	}
	if err != nil {
		return err
	}
	return helper.JsonList(c, "ok", dto.ToEnrollmentResponses(rows), nil)
}

// DELETE /api/a/classes/:id/students   body: {"student_ids":[...], "session_id":"..."}
func (ctl *EnrollmentController) RemoveStudents(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.RemoveStudentsRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	res, err := ctl.svc.DeleteStudentsFromClass(c.UserContext(), req.StudentIDs, classID, req.SessionID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, res.Message, res)
}
