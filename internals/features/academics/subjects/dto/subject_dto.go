package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectName string `json:"subject_name" validate:"required,max=120"`
	SubjectCode string `json:"subject_code" validate:"required,max=20"`
}

// Normalize trims and upper-cases the code ("mat-01" -> "MAT-01").
func (r *CreateSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
}

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subject_name" validate:"omitempty,min=1,max=120"`
	SubjectCode *string `json:"subject_code" validate:"omitempty,min=1,max=20"`
}

func (r UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectCode != nil {
		m.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.SubjectCode))
	}
}

type SubjectResponse struct {
	SubjectID        uuid.UUID `json:"subject_id"`
	SubjectName      string    `json:"subject_name"`
	SubjectCode      string    `json:"subject_code"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at"`
}

func ToSubjectResponse(m model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:        m.SubjectID,
		SubjectName:      m.SubjectName,
		SubjectCode:      m.SubjectCode,
		SubjectCreatedAt: m.SubjectCreatedAt,
		SubjectUpdatedAt: m.SubjectUpdatedAt,
	}
}
