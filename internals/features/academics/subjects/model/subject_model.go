package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	SubjectID   uuid.UUID `json:"subject_id" gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubjectName string    `json:"subject_name" gorm:"column:subject_name;type:varchar(120);not null"`
	SubjectCode string    `json:"subject_code" gorm:"column:subject_code;type:varchar(20);not null;uniqueIndex"`

	SubjectCreatedAt time.Time `json:"subject_created_at" gorm:"column:subject_created_at;type:timestamptz;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at" gorm:"column:subject_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }
