package model

import (
	"time"

	"github.com/google/uuid"
)

type ClassModel struct {
	ClassID       uuid.UUID `json:"class_id" gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassName     string    `json:"class_name" gorm:"column:class_name;type:varchar(80);not null;uniqueIndex"`
	ClassLevel    string    `json:"class_level" gorm:"column:class_level;type:varchar(60);not null;default:''"`
	ClassCapacity *int      `json:"class_capacity,omitempty" gorm:"column:class_capacity;type:int"`

	ClassCreatedAt time.Time `json:"class_created_at" gorm:"column:class_created_at;type:timestamptz;not null;autoCreateTime"`
	ClassUpdatedAt time.Time `json:"class_updated_at" gorm:"column:class_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassSubjectModel pairs a class with a subject it teaches.
type ClassSubjectModel struct {
	ClassSubjectID        uuid.UUID `json:"class_subject_id" gorm:"column:class_subject_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassSubjectClassID   uuid.UUID `json:"class_subject_class_id" gorm:"column:class_subject_class_id;type:uuid;not null"`
	ClassSubjectSubjectID uuid.UUID `json:"class_subject_subject_id" gorm:"column:class_subject_subject_id;type:uuid;not null"`
	ClassSubjectCreatedAt time.Time `json:"class_subject_created_at" gorm:"column:class_subject_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (ClassSubjectModel) TableName() string { return "class_subjects" }
