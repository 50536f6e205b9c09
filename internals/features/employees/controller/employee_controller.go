package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/employees/dto"
	"schooladmin_backend/internals/features/employees/model"
	helper "schooladmin_backend/internals/helpers"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

// POST /api/a/employees
func (ctl *EmployeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.MapWriteError(err, "employee")
	}
	return helper.JsonCreated(c, "employee created", dto.ToEmployeeResponse(m))
}

// GET /api/a/employees?q=&status=&department=
func (ctl *EmployeeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "full_name", "asc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.EmployeeModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(employee_full_name) LIKE ? OR LOWER(employee_code) LIKE ?", like, like)
	}
	if st := c.Query("status"); st != "" {
		if st != string(model.EmployeeActive) && st != string(model.EmployeeInactive) {
			return helper.FieldError("status", "must be one of: active inactive")
		}
		q = q.Where("employee_status = ?", st)
	}
	if dep := strings.TrimSpace(c.Query("department")); dep != "" {
		q = q.Where("employee_department = ?", dep)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Internal(err)
	}
	allowed := map[string]string{
		"full_name":    "employee_full_name",
		"code":         "employee_code",
		"joining_date": "employee_joining_date",
		"created_at":   "employee_created_at",
	}
	var rows []model.EmployeeModel
	if err := q.Order(p.OrderClause(allowed, "full_name")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Internal(err)
	}
	return helper.JsonList(c, "ok", dto.ToEmployeeResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/a/employees/:id
func (ctl *EmployeeController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.EmployeeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "employee_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "employee")
	}
	return helper.JsonOK(c, "ok", dto.ToEmployeeResponse(m))
}

// PATCH /api/a/employees/:id
func (ctl *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateEmployeeRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	var m model.EmployeeModel
	if err := db.First(&m, "employee_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "employee")
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.MapWriteError(err, "employee")
	}
	return helper.JsonUpdated(c, "employee updated", dto.ToEmployeeResponse(m))
}

// DELETE /api/a/employees/:id (soft)
func (ctl *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EmployeeModel{}, "employee_id = ?", id)
	if res.Error != nil {
		return helper.MapDeleteError(res.Error, "employee")
	}
	if res.RowsAffected == 0 {
		return helper.NotFound("employee not found")
	}
	return helper.JsonDeleted(c, "employee deleted", fiber.Map{"employee_id": id})
}
