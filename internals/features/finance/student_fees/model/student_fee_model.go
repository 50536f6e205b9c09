// file: internals/features/finance/student_fees/model/student_fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StudentFeeModel is one ledger row: a fee applied to an enrollment link with its discount terms.
// Rows are not unique per (enrollment, fee).
type StudentFeeModel struct {
	StudentFeeID             uuid.UUID `json:"student_fee_id" gorm:"column:student_fee_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentFeeStudentClassID uuid.UUID `json:"student_fee_student_class_id" gorm:"column:student_fee_student_class_id;type:uuid;not null;index"`
	StudentFeeFeeID          uuid.UUID `json:"student_fee_fee_id" gorm:"column:student_fee_fee_id;type:uuid;not null;index"`

	// Discount terms: flat amount and percent of gross, applied side by side
	StudentFeeDiscount            decimal.Decimal `json:"student_fee_discount" gorm:"column:student_fee_discount;type:numeric(12,2);not null;default:0"`
	StudentFeeDiscountByPercent   decimal.Decimal `json:"student_fee_discount_by_percent" gorm:"column:student_fee_discount_by_percent;type:numeric(5,2);not null;default:0"`
	StudentFeeDiscountDescription string          `json:"student_fee_discount_description" gorm:"column:student_fee_discount_description;type:text;not null;default:''"`

	StudentFeeCreatedAt time.Time `json:"student_fee_created_at" gorm:"column:student_fee_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentFeeUpdatedAt time.Time `json:"student_fee_updated_at" gorm:"column:student_fee_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (StudentFeeModel) TableName() string { return "student_fees" }
