package dto

import (
	"time"

	"github.com/google/uuid"
)

// AddToClassRequest: class id comes from the path.
type AddToClassRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

type RemoveStudentsRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
	SessionID  uuid.UUID   `json:"session_id" validate:"required"`
}

type RemoveStudentsResult struct {
	Success               bool   `json:"success"`
	Message               string `json:"message"`
	LinksRemoved          int64  `json:"links_removed"`
	FeeAssignmentsRemoved int64  `json:"fee_assignments_removed"`
}

/* =========================================================
   Typed joined projection (enrollment + student + class + session)
========================================================= */

type EnrolledStudent struct {
	StudentID             uuid.UUID `json:"student_id"`
	StudentRegistrationNo string    `json:"student_registration_no"`
	StudentFirstName      string    `json:"student_first_name"`
	StudentLastName       string    `json:"student_last_name"`
	StudentIsAssigned     bool      `json:"student_is_assigned"`
}

type ClassRef struct {
	ClassID    uuid.UUID `json:"class_id"`
	ClassName  string    `json:"class_name"`
	ClassLevel string    `json:"class_level"`
}

type SessionRef struct {
	SessionID   uuid.UUID `json:"session_id"`
	SessionName string    `json:"session_name"`
}

type EnrollmentResponse struct {
	StudentClassID        uuid.UUID       `json:"student_class_id"`
	StudentClassCreatedAt time.Time       `json:"student_class_created_at"`
	Student               EnrolledStudent `json:"student"`
	Class                 ClassRef        `json:"class"`
	Session               SessionRef      `json:"session"`
}

// EnrollmentRow is the flat scan target of the join; column names match the select list.
type EnrollmentRow struct {
	StudentClassID        uuid.UUID
	StudentClassCreatedAt time.Time
	StudentID             uuid.UUID
	StudentRegistrationNo string
	StudentFirstName      string
	StudentLastName       string
	StudentIsAssigned     bool
	ClassID               uuid.UUID
	ClassName             string
	ClassLevel            string
	SessionID             uuid.UUID
	SessionName           string
}

func (r EnrollmentRow) ToResponse() EnrollmentResponse {
	return EnrollmentResponse{
		StudentClassID:        r.StudentClassID,
		StudentClassCreatedAt: r.StudentClassCreatedAt,
		Student: EnrolledStudent{
			StudentID:             r.StudentID,
			StudentRegistrationNo: r.StudentRegistrationNo,
			StudentFirstName:      r.StudentFirstName,
			StudentLastName:       r.StudentLastName,
			StudentIsAssigned:     r.StudentIsAssigned,
		},
		Class:   ClassRef{ClassID: r.ClassID, ClassName: r.ClassName, ClassLevel: r.ClassLevel},
		Session: SessionRef{SessionID: r.SessionID, SessionName: r.SessionName},
	}
}

func ToEnrollmentResponses(rows []EnrollmentRow) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToResponse())
	}
	return out
}
