package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSalaryNet(t *testing.T) {
	cases := []struct {
		name                     string
		basic, allowance, deduct string
		want                     string
	}{
		{"basic only", "3000", "0", "0", "3000"},
		{"allowance and deduction", "5000", "500", "1200", "4300"},
		{"cents", "1000.55", "0.45", "0.10", "1000.90"},
		{"deduction above pay is not clamped", "100", "0", "250", "-150"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := SalaryModel{
				SalaryBasic:     decimal.RequireFromString(tc.basic),
				SalaryAllowance: decimal.RequireFromString(tc.allowance),
				SalaryDeduction: decimal.RequireFromString(tc.deduct),
			}
			assert.True(t, decimal.RequireFromString(tc.want).Equal(m.Net()), "got %s", m.Net())
		})
	}
}
