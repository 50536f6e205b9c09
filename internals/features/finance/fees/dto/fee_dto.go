// file: internals/features/finance/fees/dto/fee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schooladmin_backend/internals/features/finance/fees/model"
)

/* =========================================================
   REQUESTS
========================================================= */

type CreateFeeRequest struct {
	FeeName string        `json:"fee_name" validate:"required,max=120"`
	FeeType model.FeeType `json:"fee_type" validate:"required,oneof=MonthlyFee AnnualFee"`

	FeeTuitionFee       *decimal.Decimal `json:"fee_tuition_fee" validate:"required,gte=0,lte=9999999999.99,scale2"`
	FeeExamFund         *decimal.Decimal `json:"fee_exam_fund" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	FeeComputerLabFund  *decimal.Decimal `json:"fee_computer_lab_fund" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	FeeStudentIDCardFee *decimal.Decimal `json:"fee_student_id_card_fee" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	FeeInfoAndCallsFee  *decimal.Decimal `json:"fee_info_and_calls_fee" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	FeeAdmissionFee     *decimal.Decimal `json:"fee_admission_fee" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
}

func (r *CreateFeeRequest) Normalize() {
	r.FeeName = strings.TrimSpace(r.FeeName)
}

func (r CreateFeeRequest) ToModel() model.FeeModel {
	m := model.FeeModel{
		FeeName:             r.FeeName,
		FeeType:             r.FeeType,
		FeeTuitionFee:       valueOrZero(r.FeeTuitionFee),
		FeeExamFund:         valueOrZero(r.FeeExamFund),
		FeeStudentIDCardFee: valueOrZero(r.FeeStudentIDCardFee),
		FeeInfoAndCallsFee:  valueOrZero(r.FeeInfoAndCallsFee),
		FeeAdmissionFee:     valueOrZero(r.FeeAdmissionFee),
	}
	if r.FeeComputerLabFund != nil {
		m.FeeComputerLabFund = decimal.NewNullDecimal(*r.FeeComputerLabFund)
	}
	return m
}

// UpdateFeeRequest is partial: nil keeps the stored value.
// FeeClearComputerLabFund sets the optional lab fund back to null.
type UpdateFeeRequest struct {
	FeeName *string        `json:"fee_name" validate:"omitempty,min=1,max=120"`
	FeeType *model.FeeType `json:"fee_type" validate:"omitempty,oneof=MonthlyFee AnnualFee"`

	FeeTuitionFee           *decimal.Decimal `json:"fee_tuition_fee" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	FeeExamFund             *decimal.Decimal `json:"fee_exam_fund" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	FeeComputerLabFund      *decimal.Decimal `json:"fee_computer_lab_fund" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	FeeClearComputerLabFund bool             `json:"fee_clear_computer_lab_fund"`
	FeeStudentIDCardFee     *decimal.Decimal `json:"fee_student_id_card_fee" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	FeeInfoAndCallsFee      *decimal.Decimal `json:"fee_info_and_calls_fee" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	FeeAdmissionFee         *decimal.Decimal `json:"fee_admission_fee" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
}

func (r *UpdateFeeRequest) Normalize() {
	if r.FeeName != nil {
		s := strings.TrimSpace(*r.FeeName)
		r.FeeName = &s
	}
}

// Apply writes the provided fields onto m.
func (r UpdateFeeRequest) Apply(m *model.FeeModel) {
	if r.FeeName != nil {
		m.FeeName = *r.FeeName
	}
	if r.FeeType != nil {
		m.FeeType = *r.FeeType
	}
	if r.FeeTuitionFee != nil {
		m.FeeTuitionFee = *r.FeeTuitionFee
	}
	if r.FeeExamFund != nil {
		m.FeeExamFund = *r.FeeExamFund
	}
	if r.FeeClearComputerLabFund {
		m.FeeComputerLabFund = decimal.NullDecimal{}
	} else if r.FeeComputerLabFund != nil {
		m.FeeComputerLabFund = decimal.NewNullDecimal(*r.FeeComputerLabFund)
	}
	if r.FeeStudentIDCardFee != nil {
		m.FeeStudentIDCardFee = *r.FeeStudentIDCardFee
	}
	if r.FeeInfoAndCallsFee != nil {
		m.FeeInfoAndCallsFee = *r.FeeInfoAndCallsFee
	}
	if r.FeeAdmissionFee != nil {
		m.FeeAdmissionFee = *r.FeeAdmissionFee
	}
}

// DeleteFeesRequest carries a comma separated id list ("id1,id2").
type DeleteFeesRequest struct {
	FeeIDs string `json:"fee_ids" validate:"required"`
}

/* =========================================================
   RESPONSES
========================================================= */

type FeeResponse struct {
	FeeID               uuid.UUID        `json:"fee_id"`
	FeeName             string           `json:"fee_name"`
	FeeType             model.FeeType    `json:"fee_type"`
	FeeTuitionFee       decimal.Decimal  `json:"fee_tuition_fee"`
	FeeExamFund         decimal.Decimal  `json:"fee_exam_fund"`
	FeeComputerLabFund  *decimal.Decimal `json:"fee_computer_lab_fund"`
	FeeStudentIDCardFee decimal.Decimal  `json:"fee_student_id_card_fee"`
	FeeInfoAndCallsFee  decimal.Decimal  `json:"fee_info_and_calls_fee"`
	FeeAdmissionFee     decimal.Decimal  `json:"fee_admission_fee"`
	FeeAnnualTotal      decimal.Decimal  `json:"fee_annual_total"`
	FeeGrossTotal       decimal.Decimal  `json:"fee_gross_total"`
	FeeCreatedAt        time.Time        `json:"fee_created_at"`
	FeeUpdatedAt        time.Time        `json:"fee_updated_at"`
}

// ToFeeResponse needs the totals from the computation package; callers pass them in
// so dto stays free of service imports.
func ToFeeResponse(m model.FeeModel, annual, gross decimal.Decimal) FeeResponse {
	var lab *decimal.Decimal
	if m.FeeComputerLabFund.Valid {
		v := m.FeeComputerLabFund.Decimal
		lab = &v
	}
	return FeeResponse{
		FeeID:               m.FeeID,
		FeeName:             m.FeeName,
		FeeType:             m.FeeType,
		FeeTuitionFee:       m.FeeTuitionFee,
		FeeExamFund:         m.FeeExamFund,
		FeeComputerLabFund:  lab,
		FeeStudentIDCardFee: m.FeeStudentIDCardFee,
		FeeInfoAndCallsFee:  m.FeeInfoAndCallsFee,
		FeeAdmissionFee:     m.FeeAdmissionFee,
		FeeAnnualTotal:      annual,
		FeeGrossTotal:       gross,
		FeeCreatedAt:        m.FeeCreatedAt,
		FeeUpdatedAt:        m.FeeUpdatedAt,
	}
}

type DeleteFeesResponse struct {
	Deleted int64 `json:"deleted"`
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
