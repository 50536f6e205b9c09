package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/subjects/dto"
	"schooladmin_backend/internals/features/academics/subjects/model"
	helper "schooladmin_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// POST /api/a/subjects
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	m := model.SubjectModel{SubjectName: req.SubjectName, SubjectCode: req.SubjectCode}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.MapWriteError(err, "subject")
	}
	return helper.JsonCreated(c, "subject created", dto.ToSubjectResponse(m))
}

// GET /api/a/subjects?q=
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SubjectModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(subject_name) LIKE ? OR LOWER(subject_code) LIKE ?", like, like)
	}
	var rows []model.SubjectModel
	if err := q.Order("subject_code ASC").Find(&rows).Error; err != nil {
		return helper.Internal(err)
	}
	out := make([]dto.SubjectResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToSubjectResponse(m))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// PATCH /api/a/subjects/:id
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSubjectRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	var m model.SubjectModel
	if err := db.First(&m, "subject_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "subject")
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.MapWriteError(err, "subject")
	}
	return helper.JsonUpdated(c, "subject updated", dto.ToSubjectResponse(m))
}

// DELETE /api/a/subjects/:id
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.MapDeleteError(res.Error, "subject")
	}
	if res.RowsAffected == 0 {
		return helper.NotFound("subject not found")
	}
	return helper.JsonDeleted(c, "subject deleted", fiber.Map{"subject_id": id})
}
