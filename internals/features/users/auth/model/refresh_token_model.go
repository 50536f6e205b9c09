package model

import (
	"time"

	"github.com/google/uuid"
)

type RefreshTokenModel struct {
	RefreshTokenID     uuid.UUID `gorm:"column:refresh_token_id;type:uuid;default:gen_random_uuid();primaryKey" json:"refresh_token_id"`
	RefreshTokenUserID uuid.UUID `gorm:"column:refresh_token_user_id;type:uuid;not null" json:"refresh_token_user_id"`

	// HMAC of the token, never the plaintext
	RefreshTokenHash []byte `gorm:"column:refresh_token_hash;type:bytea;not null" json:"-"`

	RefreshTokenExpiresAt time.Time `gorm:"column:refresh_token_expires_at;type:timestamptz;not null" json:"refresh_token_expires_at"`
	RefreshTokenUserAgent *string   `gorm:"column:refresh_token_user_agent" json:"refresh_token_user_agent,omitempty"`
	RefreshTokenIP        *string   `gorm:"column:refresh_token_ip" json:"refresh_token_ip,omitempty"`

	RefreshTokenCreatedAt time.Time `gorm:"column:refresh_token_created_at;type:timestamptz;autoCreateTime" json:"refresh_token_created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
