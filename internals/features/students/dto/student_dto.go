package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/students/model"
	helper "schooladmin_backend/internals/helpers"
)

type CreateStudentRequest struct {
	StudentRegistrationNo string       `json:"student_registration_no" validate:"required,max=40"`
	StudentFirstName      string       `json:"student_first_name" validate:"required,max=80"`
	StudentLastName       string       `json:"student_last_name" validate:"max=80"`
	StudentGender         model.Gender `json:"student_gender" validate:"omitempty,oneof=male female other"`
	StudentDateOfBirth    *helper.Date `json:"student_date_of_birth"`
	StudentGuardianName   string       `json:"student_guardian_name" validate:"max=120"`
	StudentPhone          string       `json:"student_phone" validate:"max=30"`
	StudentEmail          *string      `json:"student_email" validate:"omitempty,email,max=160"`
	StudentAddress        string       `json:"student_address"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentRegistrationNo = strings.TrimSpace(r.StudentRegistrationNo)
	r.StudentFirstName = strings.TrimSpace(r.StudentFirstName)
	r.StudentLastName = strings.TrimSpace(r.StudentLastName)
	r.StudentGuardianName = strings.TrimSpace(r.StudentGuardianName)
	r.StudentPhone = strings.TrimSpace(r.StudentPhone)
	r.StudentEmail = trimPtr(r.StudentEmail)
	if r.StudentGender == "" {
		r.StudentGender = model.GenderOther
	}
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentRegistrationNo: r.StudentRegistrationNo,
		StudentFirstName:      r.StudentFirstName,
		StudentLastName:       r.StudentLastName,
		StudentGender:         r.StudentGender,
		StudentDateOfBirth:    helper.DatatypesDate(r.StudentDateOfBirth),
		StudentGuardianName:   r.StudentGuardianName,
		StudentPhone:          r.StudentPhone,
		StudentEmail:          r.StudentEmail,
		StudentAddress:        r.StudentAddress,
	}
}

// UpdateStudentRequest (partial)
type UpdateStudentRequest struct {
	StudentRegistrationNo *string       `json:"student_registration_no" validate:"omitempty,min=1,max=40"`
	StudentFirstName      *string       `json:"student_first_name" validate:"omitempty,min=1,max=80"`
	StudentLastName       *string       `json:"student_last_name" validate:"omitempty,max=80"`
	StudentGender         *model.Gender `json:"student_gender" validate:"omitempty,oneof=male female other"`
	StudentDateOfBirth    *helper.Date  `json:"student_date_of_birth"`
	StudentGuardianName   *string       `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentPhone          *string       `json:"student_phone" validate:"omitempty,max=30"`
	StudentEmail          *string       `json:"student_email" validate:"omitempty,email,max=160"`
	StudentAddress        *string       `json:"student_address"`
}

func (r *UpdateStudentRequest) Normalize() {
	r.StudentRegistrationNo = trimPtr(r.StudentRegistrationNo)
	r.StudentFirstName = trimPtr(r.StudentFirstName)
	r.StudentLastName = trimPtr(r.StudentLastName)
	r.StudentEmail = trimPtr(r.StudentEmail)
}

// Apply never touches StudentIsAssigned; only enrollment changes it.
func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentRegistrationNo != nil {
		m.StudentRegistrationNo = *r.StudentRegistrationNo
	}
	if r.StudentFirstName != nil {
		m.StudentFirstName = *r.StudentFirstName
	}
	if r.StudentLastName != nil {
		m.StudentLastName = *r.StudentLastName
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentDateOfBirth != nil {
		m.StudentDateOfBirth = helper.DatatypesDate(r.StudentDateOfBirth)
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = *r.StudentGuardianName
	}
	if r.StudentPhone != nil {
		m.StudentPhone = *r.StudentPhone
	}
	if r.StudentEmail != nil {
		m.StudentEmail = r.StudentEmail
	}
	if r.StudentAddress != nil {
		m.StudentAddress = *r.StudentAddress
	}
}

type StudentResponse struct {
	StudentID             uuid.UUID    `json:"student_id"`
	StudentRegistrationNo string       `json:"student_registration_no"`
	StudentFirstName      string       `json:"student_first_name"`
	StudentLastName       string       `json:"student_last_name"`
	StudentFullName       string       `json:"student_full_name"`
	StudentGender         model.Gender `json:"student_gender"`
	StudentDateOfBirth    *string      `json:"student_date_of_birth,omitempty"`
	StudentGuardianName   string       `json:"student_guardian_name"`
	StudentPhone          string       `json:"student_phone"`
	StudentEmail          *string      `json:"student_email,omitempty"`
	StudentAddress        string       `json:"student_address"`
	StudentIsAssigned     bool         `json:"student_is_assigned"`
	StudentCreatedAt      time.Time    `json:"student_created_at"`
	StudentUpdatedAt      time.Time    `json:"student_updated_at"`
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:             m.StudentID,
		StudentRegistrationNo: m.StudentRegistrationNo,
		StudentFirstName:      m.StudentFirstName,
		StudentLastName:       m.StudentLastName,
		StudentFullName:       m.FullName(),
		StudentGender:         m.StudentGender,
		StudentDateOfBirth:    helper.FormatDate(m.StudentDateOfBirth),
		StudentGuardianName:   m.StudentGuardianName,
		StudentPhone:          m.StudentPhone,
		StudentEmail:          m.StudentEmail,
		StudentAddress:        m.StudentAddress,
		StudentIsAssigned:     m.StudentIsAssigned,
		StudentCreatedAt:      m.StudentCreatedAt,
		StudentUpdatedAt:      m.StudentUpdatedAt,
	}
}

func ToStudentResponses(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToStudentResponse(m))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
