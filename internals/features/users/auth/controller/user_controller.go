package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/users/auth/dto"
	"schooladmin_backend/internals/features/users/auth/service"
	helper "schooladmin_backend/internals/helpers"
)

type UserController struct {
	svc *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{svc: service.NewUserService(db)}
}

// POST /api/a/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	m, err := uc.svc.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "user created", dto.ToUserResponse(*m))
}

// GET /api/a/users?q=&role=
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	rows, total, err := uc.svc.List(c.UserContext(), c.Query("q"), c.Query("role"), p)
	if err != nil {
		return err
	}
	return helper.JsonList(c, "ok", dto.ToUserResponses(rows), helper.BuildMeta(total, p))
}

// PATCH /api/a/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	m, err := uc.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "user updated", dto.ToUserResponse(*m))
}
