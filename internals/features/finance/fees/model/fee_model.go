// file: internals/features/finance/fees/model/fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- ENUM fee_type -----------------------------------------------------------
type FeeType string

const (
	FeeTypeMonthly FeeType = "MonthlyFee"
	FeeTypeAnnual  FeeType = "AnnualFee"
)

// --- MODEL fees ----------------------------------------------------------------
// FeeName doubles as the level/category label ("Grade 1", "Play Group", ...).
type FeeModel struct {
	FeeID   uuid.UUID `json:"fee_id" gorm:"column:fee_id;type:uuid;default:gen_random_uuid();primaryKey"`
	FeeName string    `json:"fee_name" gorm:"column:fee_name;type:varchar(120);not null"`
	FeeType FeeType   `json:"fee_type" gorm:"column:fee_type;type:varchar(20);not null"`

	// Nominal
	FeeTuitionFee       decimal.Decimal     `json:"fee_tuition_fee" gorm:"column:fee_tuition_fee;type:numeric(12,2);not null;default:0"`
	FeeExamFund         decimal.Decimal     `json:"fee_exam_fund" gorm:"column:fee_exam_fund;type:numeric(12,2);not null;default:0"`
	FeeComputerLabFund  decimal.NullDecimal `json:"fee_computer_lab_fund" gorm:"column:fee_computer_lab_fund;type:numeric(12,2)"`
	FeeStudentIDCardFee decimal.Decimal     `json:"fee_student_id_card_fee" gorm:"column:fee_student_id_card_fee;type:numeric(12,2);not null;default:0"`
	FeeInfoAndCallsFee  decimal.Decimal     `json:"fee_info_and_calls_fee" gorm:"column:fee_info_and_calls_fee;type:numeric(12,2);not null;default:0"`
	FeeAdmissionFee     decimal.Decimal     `json:"fee_admission_fee" gorm:"column:fee_admission_fee;type:numeric(12,2);not null;default:0"`

	// Timestamps
	FeeCreatedAt time.Time `json:"fee_created_at" gorm:"column:fee_created_at;type:timestamptz;not null;autoCreateTime"`
	FeeUpdatedAt time.Time `json:"fee_updated_at" gorm:"column:fee_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (FeeModel) TableName() string { return "fees" }
