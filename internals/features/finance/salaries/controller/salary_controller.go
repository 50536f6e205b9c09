package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/finance/salaries/dto"
	"schooladmin_backend/internals/features/finance/salaries/model"
	helper "schooladmin_backend/internals/helpers"
)

type SalaryController struct {
	DB *gorm.DB
}

func NewSalaryController(db *gorm.DB) *SalaryController {
	return &SalaryController{DB: db}
}

// POST /api/a/salaries
func (ctl *SalaryController) Create(c *fiber.Ctx) error {
	var req dto.CreateSalaryRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Conflict("salary for this employee and period already exists", err)
		}
		return helper.MapWriteError(err, "salary")
	}
	return helper.JsonCreated(c, "salary created", dto.ToSalaryResponse(m))
}

// GET /api/a/salaries?employee_id=&month=&year=&paid=
func (ctl *SalaryController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "period", "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SalaryModel{})
	empID, err := helper.ParseUUIDQuery(c, "employee_id")
	if err != nil {
		return err
	}
	if empID != nil {
		q = q.Where("salary_employee_id = ?", *empID)
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return helper.FieldError("month", "must be between 1 and 12")
		}
		q = q.Where("salary_month = ?", m)
	}
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return helper.FieldError("year", "must be a number")
		}
		q = q.Where("salary_year = ?", y)
	}
	if raw := c.Query("paid"); raw != "" {
		paid, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.FieldError("paid", "must be true or false")
		}
		if paid {
			q = q.Where("salary_paid_at IS NOT NULL")
		} else {
			q = q.Where("salary_paid_at IS NULL")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Internal(err)
	}
	order := "salary_year DESC, salary_month DESC"
	if p.SortOrder == "asc" {
		order = "salary_year ASC, salary_month ASC"
	}
	var rows []model.SalaryModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Internal(err)
	}
	return helper.JsonList(c, "ok", dto.ToSalaryResponses(rows), helper.BuildMeta(total, p))
}

// PATCH /api/a/salaries/:id
func (ctl *SalaryController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSalaryRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	var m model.SalaryModel
	if err := db.First(&m, "salary_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "salary")
	}
	if m.SalaryPaidAt != nil {
		return helper.Conflict("salary is already paid", nil)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.MapWriteError(err, "salary")
	}
	return helper.JsonUpdated(c, "salary updated", dto.ToSalaryResponse(m))
}

// POST /api/a/salaries/:id/pay
func (ctl *SalaryController) MarkPaid(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	var m model.SalaryModel
	if err := db.First(&m, "salary_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "salary")
	}
	if m.SalaryPaidAt != nil {
		return helper.Conflict("salary is already paid", nil)
	}
	now := time.Now()
	if err := db.Model(&m).Update("salary_paid_at", now).Error; err != nil {
		return helper.Internal(err)
	}
	m.SalaryPaidAt = &now
	return helper.JsonUpdated(c, "salary marked as paid", dto.ToSalaryResponse(m))
}

// DELETE /api/a/salaries/:id
func (ctl *SalaryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SalaryModel{}, "salary_id = ?", id)
	if res.Error != nil {
		return helper.MapDeleteError(res.Error, "salary")
	}
	if res.RowsAffected == 0 {
		return helper.NotFound("salary not found")
	}
	return helper.JsonDeleted(c, "salary deleted", fiber.Map{"salary_id": id})
}
