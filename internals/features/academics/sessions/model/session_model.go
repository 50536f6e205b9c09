package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessionModel is one academic year ("2025-2026").
type SessionModel struct {
	SessionID        uuid.UUID      `json:"session_id" gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionName      string         `json:"session_name" gorm:"column:session_name;type:varchar(40);not null;uniqueIndex"`
	SessionStartDate datatypes.Date `json:"session_start_date" gorm:"column:session_start_date;type:date;not null"`
	SessionEndDate   datatypes.Date `json:"session_end_date" gorm:"column:session_end_date;type:date;not null"`
	SessionIsCurrent bool           `json:"session_is_current" gorm:"column:session_is_current;not null;default:false"`

	SessionCreatedAt time.Time `json:"session_created_at" gorm:"column:session_created_at;type:timestamptz;not null;autoCreateTime"`
	SessionUpdatedAt time.Time `json:"session_updated_at" gorm:"column:session_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (SessionModel) TableName() string { return "academic_sessions" }
