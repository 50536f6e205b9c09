// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is a staff account that can sign in to the admin API.
type UserModel struct {
	UserID        uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserName      string     `json:"user_name" gorm:"column:user_name;type:varchar(80);not null"`
	UserEmail     string     `json:"user_email" gorm:"column:user_email;type:varchar(160);not null"`
	UserPassword  string     `json:"-" gorm:"column:user_password;type:text;not null"`
	UserRole      string     `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'accountant'"`
	UserIsActive  bool       `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`
	UserLastLogin *time.Time `json:"user_last_login,omitempty" gorm:"column:user_last_login;type:timestamptz"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
