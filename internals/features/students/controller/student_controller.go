// file: internals/features/students/controller/student_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "schooladmin_backend/internals/features/academics/classes/model"
	"schooladmin_backend/internals/features/students/dto"
	"schooladmin_backend/internals/features/students/model"
	helper "schooladmin_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.MapWriteError(err, "student")
	}
	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(m))
}

// GET /api/a/students?q=&assigned=true|false&page=&per_page=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(`LOWER(student_first_name || ' ' || student_last_name) LIKE ?
			OR LOWER(student_registration_no) LIKE ?`, like, like)
	}
	if raw := c.Query("assigned"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.FieldError("assigned", "must be true or false")
		}
		q = q.Where("student_is_assigned = ?", b)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Internal(err)
	}

	allowed := map[string]string{
		"created_at":      "student_created_at",
		"first_name":      "student_first_name",
		"registration_no": "student_registration_no",
	}
	var rows []model.StudentModel
	if err := q.Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Internal(err)
	}
	return helper.JsonList(c, "ok", dto.ToStudentResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/a/students/:id
func (ctl *StudentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "student_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "student")
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(m))
}

// PATCH /api/a/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStudentRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	var m model.StudentModel
	if err := db.First(&m, "student_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "student")
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.MapWriteError(err, "student")
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(m))
}

// DELETE /api/a/students/:id (soft). Enrolled students must be removed from their classes first.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m model.StudentModel
		if err := tx.First(&m, "student_id = ?", id).Error; err != nil {
			return helper.MapReadError(err, "student")
		}
		var links int64
		if err := tx.Model(&classModel.StudentClassModel{}).
			Where("student_class_student_id = ?", id).
			Count(&links).Error; err != nil {
			return helper.Internal(err)
		}
		if links > 0 {
			return helper.Conflict("student is still enrolled in a class", nil)
		}
		if err := tx.Delete(&m).Error; err != nil {
			return helper.MapDeleteError(err, "student")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}
