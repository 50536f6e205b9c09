package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"schooladmin_backend/internals/features/finance/fees/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleFee() model.FeeModel {
	return model.FeeModel{
		FeeName:             "Grade 1",
		FeeType:             model.FeeTypeAnnual,
		FeeTuitionFee:       dec("2000"),
		FeeExamFund:         dec("500"),
		FeeStudentIDCardFee: dec("100"),
		FeeInfoAndCallsFee:  dec("50"),
		FeeAdmissionFee:     dec("1000"),
	}
}

func TestGrossTotals(t *testing.T) {
	f := sampleFee()
	assert.True(t, GrossAnnualTotal(f).Equal(dec("650")))
	assert.True(t, GrossTotal(f).Equal(dec("3650")))

	f.FeeComputerLabFund = decimal.NewNullDecimal(dec("250"))
	assert.True(t, GrossAnnualTotal(f).Equal(dec("900")))
	assert.True(t, GrossTotal(f).Equal(dec("3900")))
}

func TestNetPayable_ParallelDiscounts(t *testing.T) {
	f := sampleFee()
	d := Discount{Amount: dec("100"), ByPercent: dec("10")}

	assert.True(t, PercentDiscountAmount(f, d).Equal(dec("365")))
	assert.True(t, NetPayable(f, d).Equal(dec("3185")))

	// sequential application would give 3650-100=3550, minus 10% = 3195
	assert.False(t, NetPayable(f, d).Equal(dec("3195")))
}

func TestNetPayable_NotClamped(t *testing.T) {
	f := sampleFee()
	d := Discount{Amount: dec("3000"), ByPercent: dec("50")}
	assert.True(t, NetPayable(f, d).Equal(dec("-1175")))
}

func TestNetPayable_Table(t *testing.T) {
	f := sampleFee()
	cases := []struct {
		name    string
		amount  string
		percent string
		want    string
	}{
		{"no discount", "0", "0", "3650"},
		{"flat only", "650", "0", "3000"},
		{"percent only", "0", "20", "2920"},
		{"full percent", "0", "100", "0"},
		{"fractional percent", "0", "12.5", "3193.75"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NetPayable(f, Discount{Amount: dec(tc.amount), ByPercent: dec(tc.percent)})
			assert.Truef(t, got.Equal(dec(tc.want)), "got %s want %s", got, tc.want)
		})
	}
}

func TestCompute_MatchesParts(t *testing.T) {
	f := sampleFee()
	d := Discount{Amount: dec("100"), ByPercent: dec("10")}
	b := Compute(f, d)

	assert.True(t, b.TuitionFee.Equal(dec("2000")))
	assert.True(t, b.AnnualTotal.Equal(dec("650")))
	assert.True(t, b.AdmissionFee.Equal(dec("1000")))
	assert.True(t, b.GrossTotal.Equal(dec("3650")))
	assert.True(t, b.PercentDiscountAmount.Equal(dec("365")))
	assert.True(t, b.NetPayable.Equal(NetPayable(f, d)))
}
