// file: internals/features/academics/classes/controller/class_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/classes/dto"
	"schooladmin_backend/internals/features/academics/classes/model"
	helper "schooladmin_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// POST /api/a/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.MapWriteError(err, "class")
	}
	return helper.JsonCreated(c, "class created", dto.ToClassResponse(m))
}

// GET /api/a/classes?q=&level=
func (ctl *ClassController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("LOWER(class_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if lv := strings.TrimSpace(c.Query("level")); lv != "" {
		q = q.Where("class_level = ?", lv)
	}
	var rows []model.ClassModel
	if err := q.Order("class_level ASC, class_name ASC").Find(&rows).Error; err != nil {
		return helper.Internal(err)
	}
	return helper.JsonList(c, "ok", dto.ToClassResponses(rows), nil)
}

// GET /api/a/classes/:id
func (ctl *ClassController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "class_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "class")
	}
	return helper.JsonOK(c, "ok", dto.ToClassResponse(m))
}

// PATCH /api/a/classes/:id
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateClassRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	var m model.ClassModel
	if err := db.First(&m, "class_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "class")
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.MapWriteError(err, "class")
	}
	return helper.JsonUpdated(c, "class updated", dto.ToClassResponse(m))
}

// DELETE /api/a/classes/:id
// Enrollment links and class subjects reference the class with RESTRICT, so a class
// in use comes back as Conflict.
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.MapDeleteError(res.Error, "class")
	}
	if res.RowsAffected == 0 {
		return helper.NotFound("class not found")
	}
	return helper.JsonDeleted(c, "class deleted", fiber.Map{"class_id": id})
}

/* =========================================================
   Class subjects
========================================================= */

// POST /api/a/classes/:id/subjects
func (ctl *ClassController) AssignSubject(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.AssignSubjectRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	m := model.ClassSubjectModel{ClassSubjectClassID: classID, ClassSubjectSubjectID: req.SubjectID}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Conflict("subject is already assigned to this class", err)
		}
		return helper.MapWriteError(err, "class subject")
	}
	return helper.JsonCreated(c, "subject assigned", m)
}

// GET /api/a/classes/:id/subjects
func (ctl *ClassController) ListSubjects(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var rows []dto.ClassSubjectResponse
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("class_subjects AS cs").
		Select("cs.class_subject_id, cs.class_subject_created_at, s.subject_id, s.subject_name, s.subject_code").
		Joins("JOIN subjects s ON s.subject_id = cs.class_subject_subject_id").
		Where("cs.class_subject_class_id = ?", classID).
		Order("s.subject_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.Internal(err)
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// DELETE /api/a/classes/:id/subjects/:subject_id
func (ctl *ClassController) RemoveSubject(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	subjectID, err := helper.ParseUUIDParam(c, "subject_id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("class_subject_class_id = ? AND class_subject_subject_id = ?", classID, subjectID).
		Delete(&model.ClassSubjectModel{})
	if res.Error != nil {
		return helper.MapDeleteError(res.Error, "class subject")
	}
	if res.RowsAffected == 0 {
		return helper.NotFound("subject is not assigned to this class")
	}
	return helper.JsonDeleted(c, "subject removed", nil)
}
