package helper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moneyReq struct {
	Amount  *decimal.Decimal `json:"amount" validate:"required,gte=0,lte=9999999999.99,scale2"`
	Percent *decimal.Decimal `json:"percent" validate:"omitempty,gte=0,lte=100,scale2"`
	Plain   decimal.Decimal  `json:"plain" validate:"gte=0,scale2"`
}

func d(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestValidateStruct_Decimal(t *testing.T) {
	cases := []struct {
		name   string
		req    moneyReq
		fields []string
	}{
		{"zero amount passes required", moneyReq{Amount: d("0")}, nil},
		{"missing amount", moneyReq{}, []string{"amount"}},
		{"negative amount", moneyReq{Amount: d("-0.01")}, []string{"amount"}},
		{"percent upper bound", moneyReq{Amount: d("1"), Percent: d("100")}, nil},
		{"percent over 100", moneyReq{Amount: d("1"), Percent: d("150")}, []string{"percent"}},
		{"negative percent", moneyReq{Amount: d("1"), Percent: d("-1")}, []string{"percent"}},
		{"negative plain", moneyReq{Amount: d("1"), Plain: decimal.NewFromInt(-3)}, []string{"plain"}},
		{"column maximum", moneyReq{Amount: d("9999999999.99")}, nil},
		{"amount overflows column", moneyReq{Amount: d("100000000000")}, []string{"amount"}},
		{"two decimals", moneyReq{Amount: d("12.34"), Percent: d("12.5")}, nil},
		{"trailing zeros are fine", moneyReq{Amount: d("1.500")}, nil},
		{"percent with three decimals", moneyReq{Amount: d("1"), Percent: d("0.004")}, []string{"percent"}},
		{"amount with three decimals", moneyReq{Amount: d("10.001")}, []string{"amount"}},
		{"plain with three decimals", moneyReq{Amount: d("1"), Plain: decimal.RequireFromString("0.125")}, []string{"plain"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.req)
			if tc.fields == nil {
				require.NoError(t, err)
				return
			}
			var ae *AppError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, KindValidation, ae.Kind)
			for _, f := range tc.fields {
				assert.Contains(t, ae.Fields, f)
			}
			assert.Len(t, ae.Fields, len(tc.fields))
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	err := ValidateStruct(moneyReq{Amount: d("1"), Percent: d("101")})
	var ae *AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, []string{"must be at most 100"}, ae.Fields["percent"])
}

func TestValidateStruct_ScaleMessage(t *testing.T) {
	err := ValidateStruct(moneyReq{Amount: d("0.001")})
	var ae *AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, []string{"must have at most 2 decimal places"}, ae.Fields["amount"])
}
