package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin_backend/internals/features/finance/fees/model"
	helper "schooladmin_backend/internals/helpers"
)

func dec(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestCreateFeeRequest_MoneyBounds(t *testing.T) {
	req := CreateFeeRequest{FeeName: "Grade 1", FeeType: model.FeeTypeAnnual, FeeTuitionFee: dec("100000000000")}
	err := helper.ValidateStruct(req)

	var ae *helper.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, helper.KindValidation, ae.Kind)
	assert.Equal(t, []string{"must be at most 9999999999.99"}, ae.Fields["fee_tuition_fee"])

	req.FeeTuitionFee = dec("9999999999.99")
	req.FeeExamFund = dec("0.5")
	require.NoError(t, helper.ValidateStruct(req))
}

func TestUpdateFeeRequest_Scale(t *testing.T) {
	err := helper.ValidateStruct(UpdateFeeRequest{FeeAdmissionFee: dec("10.001")})
	var ae *helper.AppError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "fee_admission_fee")
}
