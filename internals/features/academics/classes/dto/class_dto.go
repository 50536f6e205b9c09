package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/academics/classes/model"
)

type CreateClassRequest struct {
	ClassName     string `json:"class_name" validate:"required,max=80"`
	ClassLevel    string `json:"class_level" validate:"max=60"`
	ClassCapacity *int   `json:"class_capacity" validate:"omitempty,gt=0"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.ClassLevel = strings.TrimSpace(r.ClassLevel)
}

func (r CreateClassRequest) ToModel() model.ClassModel {
	return model.ClassModel{
		ClassName:     r.ClassName,
		ClassLevel:    r.ClassLevel,
		ClassCapacity: r.ClassCapacity,
	}
}

type UpdateClassRequest struct {
	ClassName     *string `json:"class_name" validate:"omitempty,min=1,max=80"`
	ClassLevel    *string `json:"class_level" validate:"omitempty,max=60"`
	ClassCapacity *int    `json:"class_capacity" validate:"omitempty,gt=0"`
}

func (r UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassLevel != nil {
		m.ClassLevel = strings.TrimSpace(*r.ClassLevel)
	}
	if r.ClassCapacity != nil {
		m.ClassCapacity = r.ClassCapacity
	}
}

type ClassResponse struct {
	ClassID        uuid.UUID `json:"class_id"`
	ClassName      string    `json:"class_name"`
	ClassLevel     string    `json:"class_level"`
	ClassCapacity  *int      `json:"class_capacity,omitempty"`
	ClassCreatedAt time.Time `json:"class_created_at"`
	ClassUpdatedAt time.Time `json:"class_updated_at"`
}

func ToClassResponse(m model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:        m.ClassID,
		ClassName:      m.ClassName,
		ClassLevel:     m.ClassLevel,
		ClassCapacity:  m.ClassCapacity,
		ClassCreatedAt: m.ClassCreatedAt,
		ClassUpdatedAt: m.ClassUpdatedAt,
	}
}

func ToClassResponses(rows []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToClassResponse(m))
	}
	return out
}

/* =========================================================
   Class subjects
========================================================= */

type AssignSubjectRequest struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
}

type ClassSubjectResponse struct {
	ClassSubjectID        uuid.UUID `json:"class_subject_id"`
	ClassSubjectCreatedAt time.Time `json:"class_subject_created_at"`
	SubjectID             uuid.UUID `json:"subject_id"`
	SubjectName           string    `json:"subject_name"`
	SubjectCode           string    `json:"subject_code"`
}
