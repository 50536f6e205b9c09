package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/employees/model"
	helper "schooladmin_backend/internals/helpers"
)

type CreateEmployeeRequest struct {
	EmployeeCode        string               `json:"employee_code" validate:"required,max=40"`
	EmployeeFullName    string               `json:"employee_full_name" validate:"required,max=160"`
	EmployeeDesignation string               `json:"employee_designation" validate:"max=80"`
	EmployeeDepartment  string               `json:"employee_department" validate:"max=80"`
	EmployeePhone       string               `json:"employee_phone" validate:"max=30"`
	EmployeeEmail       *string              `json:"employee_email" validate:"omitempty,email,max=160"`
	EmployeeJoiningDate *helper.Date         `json:"employee_joining_date"`
	EmployeeStatus      model.EmployeeStatus `json:"employee_status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.EmployeeFullName = strings.TrimSpace(r.EmployeeFullName)
	r.EmployeeDesignation = strings.TrimSpace(r.EmployeeDesignation)
	r.EmployeeDepartment = strings.TrimSpace(r.EmployeeDepartment)
	if r.EmployeeEmail != nil {
		e := strings.TrimSpace(*r.EmployeeEmail)
		r.EmployeeEmail = &e
		if e == "" {
			r.EmployeeEmail = nil
		}
	}
	if r.EmployeeStatus == "" {
		r.EmployeeStatus = model.EmployeeActive
	}
}

func (r CreateEmployeeRequest) ToModel() model.EmployeeModel {
	return model.EmployeeModel{
		EmployeeCode:        r.EmployeeCode,
		EmployeeFullName:    r.EmployeeFullName,
		EmployeeDesignation: r.EmployeeDesignation,
		EmployeeDepartment:  r.EmployeeDepartment,
		EmployeePhone:       r.EmployeePhone,
		EmployeeEmail:       r.EmployeeEmail,
		EmployeeJoiningDate: helper.DatatypesDate(r.EmployeeJoiningDate),
		EmployeeStatus:      r.EmployeeStatus,
	}
}

type UpdateEmployeeRequest struct {
	EmployeeCode        *string               `json:"employee_code" validate:"omitempty,min=1,max=40"`
	EmployeeFullName    *string               `json:"employee_full_name" validate:"omitempty,min=1,max=160"`
	EmployeeDesignation *string               `json:"employee_designation" validate:"omitempty,max=80"`
	EmployeeDepartment  *string               `json:"employee_department" validate:"omitempty,max=80"`
	EmployeePhone       *string               `json:"employee_phone" validate:"omitempty,max=30"`
	EmployeeEmail       *string               `json:"employee_email" validate:"omitempty,email,max=160"`
	EmployeeJoiningDate *helper.Date          `json:"employee_joining_date"`
	EmployeeStatus      *model.EmployeeStatus `json:"employee_status" validate:"omitempty,oneof=active inactive"`
}

func (r UpdateEmployeeRequest) Apply(m *model.EmployeeModel) {
	if r.EmployeeCode != nil {
		m.EmployeeCode = strings.TrimSpace(*r.EmployeeCode)
	}
	if r.EmployeeFullName != nil {
		m.EmployeeFullName = strings.TrimSpace(*r.EmployeeFullName)
	}
	if r.EmployeeDesignation != nil {
		m.EmployeeDesignation = *r.EmployeeDesignation
	}
	if r.EmployeeDepartment != nil {
		m.EmployeeDepartment = *r.EmployeeDepartment
	}
	if r.EmployeePhone != nil {
		m.EmployeePhone = *r.EmployeePhone
	}
	if r.EmployeeEmail != nil {
		m.EmployeeEmail = r.EmployeeEmail
	}
	if r.EmployeeJoiningDate != nil {
		m.EmployeeJoiningDate = helper.DatatypesDate(r.EmployeeJoiningDate)
	}
	if r.EmployeeStatus != nil {
		m.EmployeeStatus = *r.EmployeeStatus
	}
}

type EmployeeResponse struct {
	EmployeeID          uuid.UUID            `json:"employee_id"`
	EmployeeCode        string               `json:"employee_code"`
	EmployeeFullName    string               `json:"employee_full_name"`
	EmployeeDesignation string               `json:"employee_designation"`
	EmployeeDepartment  string               `json:"employee_department"`
	EmployeePhone       string               `json:"employee_phone"`
	EmployeeEmail       *string              `json:"employee_email,omitempty"`
	EmployeeJoiningDate *string              `json:"employee_joining_date,omitempty"`
	EmployeeStatus      model.EmployeeStatus `json:"employee_status"`
	EmployeeCreatedAt   time.Time            `json:"employee_created_at"`
	EmployeeUpdatedAt   time.Time            `json:"employee_updated_at"`
}

func ToEmployeeResponse(m model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:          m.EmployeeID,
		EmployeeCode:        m.EmployeeCode,
		EmployeeFullName:    m.EmployeeFullName,
		EmployeeDesignation: m.EmployeeDesignation,
		EmployeeDepartment:  m.EmployeeDepartment,
		EmployeePhone:       m.EmployeePhone,
		EmployeeEmail:       m.EmployeeEmail,
		EmployeeJoiningDate: helper.FormatDate(m.EmployeeJoiningDate),
		EmployeeStatus:      m.EmployeeStatus,
		EmployeeCreatedAt:   m.EmployeeCreatedAt,
		EmployeeUpdatedAt:   m.EmployeeUpdatedAt,
	}
}

func ToEmployeeResponses(rows []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToEmployeeResponse(m))
	}
	return out
}
