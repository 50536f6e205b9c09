// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/users/auth/model"
)

/* =========================================================
   AUTH
========================================================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=160"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// RefreshRequest: the token may also come from the refresh_token cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

type LoginResponse struct {
	User   UserResponse `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

/* =========================================================
   USER ADMIN
========================================================= */

type CreateUserRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=80"`
	UserEmail    string `json:"user_email" validate:"required,email,max=160"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=admin accountant teacher"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
	r.UserRole = strings.ToLower(strings.TrimSpace(r.UserRole))
}

type UpdateUserRequest struct {
	UserName     *string `json:"user_name" validate:"omitempty,min=3,max=80"`
	UserRole     *string `json:"user_role" validate:"omitempty,oneof=admin accountant teacher"`
	UserIsActive *bool   `json:"user_is_active"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.UserRole != nil {
		v := strings.ToLower(strings.TrimSpace(*r.UserRole))
		r.UserRole = &v
	}
}

func (r UpdateUserRequest) Apply(m *model.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.UserRole != nil {
		m.UserRole = *r.UserRole
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
}

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	UserRole      string     `json:"user_role"`
	UserIsActive  bool       `json:"user_is_active"`
	UserLastLogin *time.Time `json:"user_last_login,omitempty"`
	UserCreatedAt time.Time  `json:"user_created_at"`
}

func ToUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserLastLogin: m.UserLastLogin,
		UserCreatedAt: m.UserCreatedAt,
	}
}

func ToUserResponses(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToUserResponse(m))
	}
	return out
}
