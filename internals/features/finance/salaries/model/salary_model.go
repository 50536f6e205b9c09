package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryModel is one monthly pay record; (employee, month, year) is unique.
type SalaryModel struct {
	SalaryID         uuid.UUID       `json:"salary_id" gorm:"column:salary_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SalaryEmployeeID uuid.UUID       `json:"salary_employee_id" gorm:"column:salary_employee_id;type:uuid;not null"`
	SalaryMonth      int16           `json:"salary_month" gorm:"column:salary_month;type:smallint;not null"`
	SalaryYear       int16           `json:"salary_year" gorm:"column:salary_year;type:smallint;not null"`
	SalaryBasic      decimal.Decimal `json:"salary_basic" gorm:"column:salary_basic;type:numeric(12,2);not null;default:0"`
	SalaryAllowance  decimal.Decimal `json:"salary_allowance" gorm:"column:salary_allowance;type:numeric(12,2);not null;default:0"`
	SalaryDeduction  decimal.Decimal `json:"salary_deduction" gorm:"column:salary_deduction;type:numeric(12,2);not null;default:0"`
	SalaryNote       string          `json:"salary_note" gorm:"column:salary_note;type:text;not null;default:''"`
	SalaryPaidAt     *time.Time      `json:"salary_paid_at,omitempty" gorm:"column:salary_paid_at;type:timestamptz"`

	SalaryCreatedAt time.Time `json:"salary_created_at" gorm:"column:salary_created_at;type:timestamptz;not null;autoCreateTime"`
	SalaryUpdatedAt time.Time `json:"salary_updated_at" gorm:"column:salary_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (SalaryModel) TableName() string { return "salaries" }

// Net = basic + allowance - deduction, not clamped.
func (m SalaryModel) Net() decimal.Decimal {
	return m.SalaryBasic.Add(m.SalaryAllowance).Sub(m.SalaryDeduction)
}
