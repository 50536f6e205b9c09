package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/sessions/dto"
	"schooladmin_backend/internals/features/academics/sessions/model"
	helper "schooladmin_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

// POST /api/a/sessions
func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.MapWriteError(err, "session")
	}
	return helper.JsonCreated(c, "session created", dto.ToSessionResponse(m))
}

// GET /api/a/sessions
func (ctl *SessionController) List(c *fiber.Ctx) error {
	var rows []model.SessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("session_start_date DESC").
		Find(&rows).Error; err != nil {
		return helper.Internal(err)
	}
	return helper.JsonList(c, "ok", dto.ToSessionResponses(rows), nil)
}

// GET /api/a/sessions/current
func (ctl *SessionController) Current(c *fiber.Ctx) error {
	var m model.SessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "session_is_current = TRUE").Error; err != nil {
		return helper.MapReadError(err, "current session")
	}
	return helper.JsonOK(c, "ok", dto.ToSessionResponse(m))
}

// PATCH /api/a/sessions/:id
func (ctl *SessionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSessionRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	var m model.SessionModel
	if err := db.First(&m, "session_id = ?", id).Error; err != nil {
		return helper.MapReadError(err, "session")
	}
	if err := req.Apply(&m); err != nil {
		return err
	}
	if err := db.Save(&m).Error; err != nil {
		return helper.MapWriteError(err, "session")
	}
	return helper.JsonUpdated(c, "session updated", dto.ToSessionResponse(m))
}

// POST /api/a/sessions/:id/current
// Exactly one session is current afterwards; the partial unique index backs this up.
func (ctl *SessionController) SetCurrent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.SessionModel
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "session_id = ?", id).Error; err != nil {
			return helper.MapReadError(err, "session")
		}
		if err := tx.Model(&model.SessionModel{}).
			Where("session_is_current = TRUE AND session_id <> ?", id).
			Update("session_is_current", false).Error; err != nil {
			return helper.Internal(err)
		}
		if err := tx.Model(&m).Update("session_is_current", true).Error; err != nil {
			return helper.MapWriteError(err, "session")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "current session set", dto.ToSessionResponse(m))
}

// DELETE /api/a/sessions/:id
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SessionModel{}, "session_id = ?", id)
	if res.Error != nil {
		return helper.MapDeleteError(res.Error, "session")
	}
	if res.RowsAffected == 0 {
		return helper.NotFound("session not found")
	}
	return helper.JsonDeleted(c, "session deleted", fiber.Map{"session_id": id})
}
