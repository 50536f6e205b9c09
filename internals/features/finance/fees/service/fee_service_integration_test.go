//go:build testutil
// +build testutil

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "schooladmin_backend/internals/features/academics/classes/model"
	"schooladmin_backend/internals/features/finance/fees/dto"
	"schooladmin_backend/internals/features/finance/fees/model"
	"schooladmin_backend/internals/features/finance/fees/service"
	ledgerModel "schooladmin_backend/internals/features/finance/student_fees/model"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/testutil/testdb"
)

func startDB(t *testing.T) *testdb.DBHandle {
	t.Helper()
	h, err := testdb.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(h.Close)
	return h
}

func kindOf(err error) helper.ErrorKind {
	var ae *helper.AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestFeeService_CreateUpdateGet(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewFeeService(h.DB)

	m, err := svc.Create(ctx, dto.CreateFeeRequest{
		FeeName:         "  Grade 1  ",
		FeeType:         model.FeeTypeAnnual,
		FeeTuitionFee:   dec(2000),
		FeeExamFund:     dec(500),
		FeeAdmissionFee: dec(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Grade 1", m.FeeName)
	assert.False(t, m.FeeComputerLabFund.Valid)

	name := "Grade 1A"
	updated, err := svc.Update(ctx, m.FeeID, dto.UpdateFeeRequest{
		FeeName:            &name,
		FeeComputerLabFund: dec(100),
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.FeeName)

	got, err := svc.Get(ctx, m.FeeID)
	require.NoError(t, err)
	assert.True(t, got.FeeComputerLabFund.Valid)
	assert.True(t, decimal.NewFromInt(100).Equal(got.FeeComputerLabFund.Decimal))
	assert.True(t, decimal.NewFromInt(2000).Equal(got.FeeTuitionFee))

	_, err = svc.Get(ctx, uuid.New())
	assert.Equal(t, helper.KindNotFound, kindOf(err))
}

func TestFeeService_CreateRejectsNegativeMoney(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewFeeService(h.DB)

	_, err := svc.Create(ctx, dto.CreateFeeRequest{
		FeeName:       "Broken",
		FeeType:       model.FeeTypeMonthly,
		FeeTuitionFee: dec(-1),
	})
	assert.Equal(t, helper.KindValidation, kindOf(err))

	rows, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFeeService_ListIsIdempotent(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewFeeService(h.DB)

	testdb.CreateFee(t, h.DB)
	testdb.CreateFee(t, h.DB)

	first, err := svc.List(ctx, "")
	require.NoError(t, err)
	second, err := svc.List(ctx, "")
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	for i := range first {
		assert.Equal(t, first[i].FeeID, second[i].FeeID)
		assert.True(t, first[i].FeeTuitionFee.Equal(second[i].FeeTuitionFee))
	}

	annual, err := svc.List(ctx, string(model.FeeTypeAnnual))
	require.NoError(t, err)
	assert.Len(t, annual, 2)
	monthly, err := svc.List(ctx, string(model.FeeTypeMonthly))
	require.NoError(t, err)
	assert.Empty(t, monthly)
}

func TestFeeService_DeleteByIDs(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewFeeService(h.DB)

	a := testdb.CreateFee(t, h.DB)
	b := testdb.CreateFee(t, h.DB)

	n, err := svc.DeleteByIDs(ctx, a.FeeID.String()+", "+b.FeeID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = svc.DeleteByIDs(ctx, "not-a-uuid")
	assert.Equal(t, helper.KindValidation, kindOf(err))
}

func TestFeeService_DeleteReferencedFeeIsRejected(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewFeeService(h.DB)

	st := testdb.CreateStudent(t, h.DB)
	cl := testdb.CreateClass(t, h.DB)
	se := testdb.CreateSession(t, h.DB)
	used := testdb.CreateFee(t, h.DB)
	free := testdb.CreateFee(t, h.DB)

	link := classModel.StudentClassModel{
		StudentClassStudentID: st.StudentID,
		StudentClassClassID:   cl.ClassID,
		StudentClassSessionID: se.SessionID,
	}
	require.NoError(t, h.DB.Create(&link).Error)
	row := ledgerModel.StudentFeeModel{
		StudentFeeStudentClassID: link.StudentClassID,
		StudentFeeFeeID:          used.FeeID,
	}
	require.NoError(t, h.DB.Create(&row).Error)

	_, err := svc.DeleteByIDs(ctx, used.FeeID.String()+","+free.FeeID.String())
	require.Error(t, err)
	assert.Equal(t, helper.KindConflict, kindOf(err))

	// single statement: neither fee is gone
	rows, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	got, err := svc.Get(ctx, used.FeeID)
	require.NoError(t, err)
	assert.True(t, used.FeeTuitionFee.Equal(got.FeeTuitionFee))
}
