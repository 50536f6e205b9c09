// file: internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/finance/fees/dto"
	"schooladmin_backend/internals/features/finance/fees/service"
	helper "schooladmin_backend/internals/helpers"
)

type FeeController struct {
	DB  *gorm.DB
	svc *service.FeeService
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db, svc: service.NewFeeService(db)}
}

// POST /api/a/fees
func (ctl *FeeController) CreateFee(c *fiber.Ctx) error {
	var req dto.CreateFeeRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	m, err := ctl.svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "fee created", service.ToResponse(*m))
}

// PATCH /api/a/fees/:id
func (ctl *FeeController) UpdateFee(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateFeeRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	m, err := ctl.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "fee updated", service.ToResponse(*m))
}

// GET /api/a/fees/:id
func (ctl *FeeController) GetFee(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", service.ToResponse(*m))
}

// DELETE /api/a/fees   body: {"fee_ids":"id1,id2"}
func (ctl *FeeController) DeleteFeesByIds(c *fiber.Ctx) error {
	var req dto.DeleteFeesRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	n, err := ctl.svc.DeleteByIDs(c.UserContext(), req.FeeIDs)
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "fees deleted", dto.DeleteFeesResponse{Deleted: n})
}

// GET /api/a/fees?type=MonthlyFee
func (ctl *FeeController) GetAllFees(c *fiber.Ctx) error {
	feeType := c.Query("type")
	if feeType != "" && feeType != "MonthlyFee" && feeType != "AnnualFee" {
		return helper.FieldError("type", "must be one of: MonthlyFee AnnualFee")
	}
	rows, err := ctl.svc.List(c.UserContext(), feeType)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "ok", service.ToResponses(rows), nil)
}
