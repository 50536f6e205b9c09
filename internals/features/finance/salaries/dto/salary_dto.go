package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schooladmin_backend/internals/features/finance/salaries/model"
)

type CreateSalaryRequest struct {
	SalaryEmployeeID uuid.UUID        `json:"salary_employee_id" validate:"required"`
	SalaryMonth      int16            `json:"salary_month" validate:"required,min=1,max=12"`
	SalaryYear       int16            `json:"salary_year" validate:"required,min=2000,max=2100"`
	SalaryBasic      *decimal.Decimal `json:"salary_basic" validate:"required,gte=0,lte=9999999999.99,scale2"`
	SalaryAllowance  *decimal.Decimal `json:"salary_allowance" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	SalaryDeduction  *decimal.Decimal `json:"salary_deduction" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	SalaryNote       string           `json:"salary_note" validate:"max=500"`
}

func (r CreateSalaryRequest) ToModel() model.SalaryModel {
	m := model.SalaryModel{
		SalaryEmployeeID: r.SalaryEmployeeID,
		SalaryMonth:      r.SalaryMonth,
		SalaryYear:       r.SalaryYear,
		SalaryBasic:      *r.SalaryBasic,
		SalaryAllowance:  decimal.Zero,
		SalaryDeduction:  decimal.Zero,
		SalaryNote:       strings.TrimSpace(r.SalaryNote),
	}
	if r.SalaryAllowance != nil {
		m.SalaryAllowance = *r.SalaryAllowance
	}
	if r.SalaryDeduction != nil {
		m.SalaryDeduction = *r.SalaryDeduction
	}
	return m
}

type UpdateSalaryRequest struct {
	SalaryBasic     *decimal.Decimal `json:"salary_basic" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	SalaryAllowance *decimal.Decimal `json:"salary_allowance" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	SalaryDeduction *decimal.Decimal `json:"salary_deduction" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	SalaryNote      *string          `json:"salary_note" validate:"omitempty,max=500"`
}

func (r UpdateSalaryRequest) Apply(m *model.SalaryModel) {
	if r.SalaryBasic != nil {
		m.SalaryBasic = *r.SalaryBasic
	}
	if r.SalaryAllowance != nil {
		m.SalaryAllowance = *r.SalaryAllowance
	}
	if r.SalaryDeduction != nil {
		m.SalaryDeduction = *r.SalaryDeduction
	}
	if r.SalaryNote != nil {
		m.SalaryNote = strings.TrimSpace(*r.SalaryNote)
	}
}

type SalaryResponse struct {
	SalaryID         uuid.UUID       `json:"salary_id"`
	SalaryEmployeeID uuid.UUID       `json:"salary_employee_id"`
	SalaryMonth      int16           `json:"salary_month"`
	SalaryYear       int16           `json:"salary_year"`
	SalaryBasic      decimal.Decimal `json:"salary_basic"`
	SalaryAllowance  decimal.Decimal `json:"salary_allowance"`
	SalaryDeduction  decimal.Decimal `json:"salary_deduction"`
	SalaryNet        decimal.Decimal `json:"salary_net"`
	SalaryNote       string          `json:"salary_note"`
	SalaryPaidAt     *time.Time      `json:"salary_paid_at,omitempty"`
	SalaryIsPaid     bool            `json:"salary_is_paid"`
	SalaryCreatedAt  time.Time       `json:"salary_created_at"`
	SalaryUpdatedAt  time.Time       `json:"salary_updated_at"`
}

func ToSalaryResponse(m model.SalaryModel) SalaryResponse {
	return SalaryResponse{
		SalaryID:         m.SalaryID,
		SalaryEmployeeID: m.SalaryEmployeeID,
		SalaryMonth:      m.SalaryMonth,
		SalaryYear:       m.SalaryYear,
		SalaryBasic:      m.SalaryBasic,
		SalaryAllowance:  m.SalaryAllowance,
		SalaryDeduction:  m.SalaryDeduction,
		SalaryNet:        m.Net(),
		SalaryNote:       m.SalaryNote,
		SalaryPaidAt:     m.SalaryPaidAt,
		SalaryIsPaid:     m.SalaryPaidAt != nil,
		SalaryCreatedAt:  m.SalaryCreatedAt,
		SalaryUpdatedAt:  m.SalaryUpdatedAt,
	}
}

func ToSalaryResponses(rows []model.SalaryModel) []SalaryResponse {
	out := make([]SalaryResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToSalaryResponse(m))
	}
	return out
}
