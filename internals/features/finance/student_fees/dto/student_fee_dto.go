// file: internals/features/finance/student_fees/dto/student_fee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	feeModel "schooladmin_backend/internals/features/finance/fees/model"
	feeService "schooladmin_backend/internals/features/finance/fees/service"
	"schooladmin_backend/internals/features/finance/student_fees/model"
)

/* =========================================================
   REQUESTS
========================================================= */

// AssignFeeRequest: both discounts are optional and independently bounded.
type AssignFeeRequest struct {
	StudentClassID      uuid.UUID        `json:"student_class_id" validate:"required"`
	FeeID               uuid.UUID        `json:"fee_id" validate:"required"`
	Discount            *decimal.Decimal `json:"discount" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	DiscountByPercent   *decimal.Decimal `json:"discount_by_percent" validate:"omitempty,gte=0,lte=100,scale2"`
	DiscountDescription string           `json:"discount_description" validate:"max=500"`
}

func (r AssignFeeRequest) ToModel() model.StudentFeeModel {
	m := model.StudentFeeModel{
		StudentFeeStudentClassID:      r.StudentClassID,
		StudentFeeFeeID:               r.FeeID,
		StudentFeeDiscount:            decimal.Zero,
		StudentFeeDiscountByPercent:   decimal.Zero,
		StudentFeeDiscountDescription: strings.TrimSpace(r.DiscountDescription),
	}
	if r.Discount != nil {
		m.StudentFeeDiscount = *r.Discount
	}
	if r.DiscountByPercent != nil {
		m.StudentFeeDiscountByPercent = *r.DiscountByPercent
	}
	return m
}

// UpdateFeeAssignmentRequest is partial; nil fields keep their stored value.
type UpdateFeeAssignmentRequest struct {
	Discount            *decimal.Decimal `json:"discount" validate:"omitempty,gte=0,lte=9999999999.99,scale2"`
	DiscountByPercent   *decimal.Decimal `json:"discount_by_percent" validate:"omitempty,gte=0,lte=100,scale2"`
	DiscountDescription *string          `json:"discount_description" validate:"omitempty,max=500"`
}

func (r UpdateFeeAssignmentRequest) Apply(m *model.StudentFeeModel) {
	if r.Discount != nil {
		m.StudentFeeDiscount = *r.Discount
	}
	if r.DiscountByPercent != nil {
		m.StudentFeeDiscountByPercent = *r.DiscountByPercent
	}
	if r.DiscountDescription != nil {
		m.StudentFeeDiscountDescription = strings.TrimSpace(*r.DiscountDescription)
	}
}

/* =========================================================
   Typed joined projection
========================================================= */

// LedgerRow is the flat scan target of the ledger join.
type LedgerRow struct {
	StudentFeeID                  uuid.UUID
	StudentFeeStudentClassID      uuid.UUID
	StudentFeeFeeID               uuid.UUID
	StudentFeeDiscount            decimal.Decimal
	StudentFeeDiscountByPercent   decimal.Decimal
	StudentFeeDiscountDescription string
	StudentFeeCreatedAt           time.Time
	StudentFeeUpdatedAt           time.Time

	FeeName             string
	FeeType             feeModel.FeeType
	FeeTuitionFee       decimal.Decimal
	FeeExamFund         decimal.Decimal
	FeeComputerLabFund  decimal.NullDecimal
	FeeStudentIDCardFee decimal.Decimal
	FeeInfoAndCallsFee  decimal.Decimal
	FeeAdmissionFee     decimal.Decimal

	StudentID             uuid.UUID
	StudentRegistrationNo string
	StudentFirstName      string
	StudentLastName       string

	ClassID     uuid.UUID
	ClassName   string
	SessionID   uuid.UUID
	SessionName string
}

func (r LedgerRow) Fee() feeModel.FeeModel {
	return feeModel.FeeModel{
		FeeID:               r.StudentFeeFeeID,
		FeeName:             r.FeeName,
		FeeType:             r.FeeType,
		FeeTuitionFee:       r.FeeTuitionFee,
		FeeExamFund:         r.FeeExamFund,
		FeeComputerLabFund:  r.FeeComputerLabFund,
		FeeStudentIDCardFee: r.FeeStudentIDCardFee,
		FeeInfoAndCallsFee:  r.FeeInfoAndCallsFee,
		FeeAdmissionFee:     r.FeeAdmissionFee,
	}
}

func (r LedgerRow) Discount() feeService.Discount {
	return feeService.Discount{Amount: r.StudentFeeDiscount, ByPercent: r.StudentFeeDiscountByPercent}
}

type FeeRef struct {
	FeeID               uuid.UUID        `json:"fee_id"`
	FeeName             string           `json:"fee_name"`
	FeeType             feeModel.FeeType `json:"fee_type"`
	FeeTuitionFee       decimal.Decimal  `json:"fee_tuition_fee"`
	FeeExamFund         decimal.Decimal  `json:"fee_exam_fund"`
	FeeComputerLabFund  *decimal.Decimal `json:"fee_computer_lab_fund"`
	FeeStudentIDCardFee decimal.Decimal  `json:"fee_student_id_card_fee"`
	FeeInfoAndCallsFee  decimal.Decimal  `json:"fee_info_and_calls_fee"`
	FeeAdmissionFee     decimal.Decimal  `json:"fee_admission_fee"`
}

type StudentRef struct {
	StudentID             uuid.UUID `json:"student_id"`
	StudentRegistrationNo string    `json:"student_registration_no"`
	StudentFirstName      string    `json:"student_first_name"`
	StudentLastName       string    `json:"student_last_name"`
}

type ClassRef struct {
	ClassID   uuid.UUID `json:"class_id"`
	ClassName string    `json:"class_name"`
}

type SessionRef struct {
	SessionID   uuid.UUID `json:"session_id"`
	SessionName string    `json:"session_name"`
}

type StudentFeeResponse struct {
	StudentFeeID                  uuid.UUID            `json:"student_fee_id"`
	StudentFeeStudentClassID      uuid.UUID            `json:"student_fee_student_class_id"`
	StudentFeeDiscount            decimal.Decimal      `json:"student_fee_discount"`
	StudentFeeDiscountByPercent   decimal.Decimal      `json:"student_fee_discount_by_percent"`
	StudentFeeDiscountDescription string               `json:"student_fee_discount_description"`
	StudentFeeCreatedAt           time.Time            `json:"student_fee_created_at"`
	StudentFeeUpdatedAt           time.Time            `json:"student_fee_updated_at"`
	Fee                           FeeRef               `json:"fee"`
	Student                       StudentRef           `json:"student"`
	Class                         ClassRef             `json:"class"`
	Session                       SessionRef           `json:"session"`
	Breakdown                     feeService.Breakdown `json:"breakdown"`
}

func (r LedgerRow) ToResponse() StudentFeeResponse {
	var lab *decimal.Decimal
	if r.FeeComputerLabFund.Valid {
		v := r.FeeComputerLabFund.Decimal
		lab = &v
	}
	return StudentFeeResponse{
		StudentFeeID:                  r.StudentFeeID,
		StudentFeeStudentClassID:      r.StudentFeeStudentClassID,
		StudentFeeDiscount:            r.StudentFeeDiscount,
		StudentFeeDiscountByPercent:   r.StudentFeeDiscountByPercent,
		StudentFeeDiscountDescription: r.StudentFeeDiscountDescription,
		StudentFeeCreatedAt:           r.StudentFeeCreatedAt,
		StudentFeeUpdatedAt:           r.StudentFeeUpdatedAt,
		Fee: FeeRef{
			FeeID:               r.StudentFeeFeeID,
			FeeName:             r.FeeName,
			FeeType:             r.FeeType,
			FeeTuitionFee:       r.FeeTuitionFee,
			FeeExamFund:         r.FeeExamFund,
			FeeComputerLabFund:  lab,
			FeeStudentIDCardFee: r.FeeStudentIDCardFee,
			FeeInfoAndCallsFee:  r.FeeInfoAndCallsFee,
			FeeAdmissionFee:     r.FeeAdmissionFee,
		},
		Student: StudentRef{
			StudentID:             r.StudentID,
			StudentRegistrationNo: r.StudentRegistrationNo,
			StudentFirstName:      r.StudentFirstName,
			StudentLastName:       r.StudentLastName,
		},
		Class:     ClassRef{ClassID: r.ClassID, ClassName: r.ClassName},
		Session:   SessionRef{SessionID: r.SessionID, SessionName: r.SessionName},
		Breakdown: feeService.Compute(r.Fee(), r.Discount()),
	}
}

func ToStudentFeeResponses(rows []LedgerRow) []StudentFeeResponse {
	out := make([]StudentFeeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToResponse())
	}
	return out
}

// ClassFeeSummary totals the ledger of one class in one session.
type ClassFeeSummary struct {
	ClassID       uuid.UUID       `json:"class_id"`
	SessionID     uuid.UUID       `json:"session_id"`
	Count         int             `json:"count"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	NetTotal      decimal.Decimal `json:"net_total"`
}

func Summarize(classID, sessionID uuid.UUID, rows []LedgerRow) ClassFeeSummary {
	s := ClassFeeSummary{
		ClassID:       classID,
		SessionID:     sessionID,
		Count:         len(rows),
		GrossTotal:    decimal.Zero,
		DiscountTotal: decimal.Zero,
		NetTotal:      decimal.Zero,
	}
	for _, r := range rows {
		b := feeService.Compute(r.Fee(), r.Discount())
		s.GrossTotal = s.GrossTotal.Add(b.GrossTotal)
		s.DiscountTotal = s.DiscountTotal.Add(b.Discount).Add(b.PercentDiscountAmount)
		s.NetTotal = s.NetTotal.Add(b.NetPayable)
	}
	return s
}
