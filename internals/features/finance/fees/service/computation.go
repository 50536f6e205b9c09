package service

import (
	"github.com/shopspring/decimal"

	"schooladmin_backend/internals/features/finance/fees/model"
)

var hundred = decimal.NewFromInt(100)

// Discount is the part of a ledger row the computation needs.
type Discount struct {
	Amount    decimal.Decimal
	ByPercent decimal.Decimal
}

// Breakdown is the display view of one assigned fee. Nothing here is persisted.
type Breakdown struct {
	TuitionFee            decimal.Decimal `json:"tuition_fee"`
	AnnualTotal           decimal.Decimal `json:"annual_total"`
	AdmissionFee          decimal.Decimal `json:"admission_fee"`
	GrossTotal            decimal.Decimal `json:"gross_total"`
	Discount              decimal.Decimal `json:"discount"`
	DiscountByPercent     decimal.Decimal `json:"discount_by_percent"`
	PercentDiscountAmount decimal.Decimal `json:"percent_discount_amount"`
	NetPayable            decimal.Decimal `json:"net_payable"`
}

// GrossAnnualTotal sums the fixed annual sub-fees; a missing lab fund counts as zero.
func GrossAnnualTotal(f model.FeeModel) decimal.Decimal {
	lab := decimal.Zero
	if f.FeeComputerLabFund.Valid {
		lab = f.FeeComputerLabFund.Decimal
	}
	return f.FeeExamFund.
		Add(lab).
		Add(f.FeeStudentIDCardFee).
		Add(f.FeeInfoAndCallsFee)
}

func GrossTotal(f model.FeeModel) decimal.Decimal {
	return f.FeeTuitionFee.Add(GrossAnnualTotal(f)).Add(f.FeeAdmissionFee)
}

// PercentDiscountAmount is taken from the gross total, never from an already discounted base.
func PercentDiscountAmount(f model.FeeModel, d Discount) decimal.Decimal {
	return GrossTotal(f).Mul(d.ByPercent).Div(hundred)
}

// NetPayable subtracts both discounts from the same gross base.
// The result is not clamped: discounts larger than the gross give a negative net.
func NetPayable(f model.FeeModel, d Discount) decimal.Decimal {
	return GrossTotal(f).Sub(d.Amount).Sub(PercentDiscountAmount(f, d))
}

func Compute(f model.FeeModel, d Discount) Breakdown {
	gross := GrossTotal(f)
	pct := PercentDiscountAmount(f, d)
	return Breakdown{
		TuitionFee:            f.FeeTuitionFee,
		AnnualTotal:           GrossAnnualTotal(f),
		AdmissionFee:          f.FeeAdmissionFee,
		GrossTotal:            gross,
		Discount:              d.Amount,
		DiscountByPercent:     d.ByPercent,
		PercentDiscountAmount: pct,
		NetPayable:            gross.Sub(d.Amount).Sub(pct),
	}
}
