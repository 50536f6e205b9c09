package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/finance/student_fees/dto"
	"schooladmin_backend/internals/features/finance/student_fees/service"
	helper "schooladmin_backend/internals/helpers"
)

type StudentFeeController struct {
	svc *service.LedgerService
}

func NewStudentFeeController(db *gorm.DB) *StudentFeeController {
	return &StudentFeeController{svc: service.NewLedgerService(db)}
}

// POST /api/a/student-fees
func (ctl *StudentFeeController) AssignFeeToStudent(c *fiber.Ctx) error {
	var req dto.AssignFeeRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	m, err := ctl.svc.Assign(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "fee assigned", m)
}

// PATCH /api/a/student-fees/:id
func (ctl *StudentFeeController) UpdateFeeAssignment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateFeeAssignmentRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	m, err := ctl.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "fee assignment updated", m)
}

// DELETE /api/a/student-fees/:id
func (ctl *StudentFeeController) RemoveFeeAssignment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.svc.Remove(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c, "fee assignment removed", fiber.Map{"student_fee_id": id})
}

// GET /api/a/student-fees?student_class_id=
func (ctl *StudentFeeController) GetStudentFees(c *fiber.Ctx) error {
	id, err := requiredUUIDQuery(c, "student_class_id")
	if err != nil {
		return err
	}
	rows, err := ctl.svc.GetStudentFees(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "ok", dto.ToStudentFeeResponses(rows), nil)
}

// GET /api/a/student-fees/by-class?class_id=&session_id=
func (ctl *StudentFeeController) GetFeeAssignmentsByClassAndSession(c *fiber.Ctx) error {
	classID, sessionID, err := classAndSession(c)
	if err != nil {
		return err
	}
	rows, err := ctl.svc.GetFeeAssignmentsByClassAndSession(c.UserContext(), classID, sessionID)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "ok", dto.ToStudentFeeResponses(rows), nil)
}

// GET /api/a/student-fees/summary?class_id=&session_id=
func (ctl *StudentFeeController) Summary(c *fiber.Ctx) error {
	classID, sessionID, err := classAndSession(c)
	if err != nil {
		return err
	}
	sum, err := ctl.svc.Summary(c.UserContext(), classID, sessionID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", sum)
}

func classAndSession(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	classID, err := requiredUUIDQuery(c, "class_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	sessionID, err := requiredUUIDQuery(c, "session_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return classID, sessionID, nil
}

func requiredUUIDQuery(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := helper.ParseUUIDQuery(c, name)
	if err != nil {
		return uuid.Nil, err
	}
	if id == nil {
		return uuid.Nil, helper.FieldError(name, "is required")
	}
	return *id, nil
}
