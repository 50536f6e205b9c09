package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentClassModel is the enrollment link: one student in one class for one session.
// (student, class, session) is unique (uq_student_classes_triple).
type StudentClassModel struct {
	StudentClassID        uuid.UUID `json:"student_class_id" gorm:"column:student_class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentClassStudentID uuid.UUID `json:"student_class_student_id" gorm:"column:student_class_student_id;type:uuid;not null"`
	StudentClassClassID   uuid.UUID `json:"student_class_class_id" gorm:"column:student_class_class_id;type:uuid;not null;index:idx_student_classes_class_session,priority:1"`
	StudentClassSessionID uuid.UUID `json:"student_class_session_id" gorm:"column:student_class_session_id;type:uuid;not null;index:idx_student_classes_class_session,priority:2"`
	StudentClassCreatedAt time.Time `json:"student_class_created_at" gorm:"column:student_class_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (StudentClassModel) TableName() string { return "student_classes" }
