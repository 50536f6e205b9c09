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
	"gorm.io/gorm"

	classModel "schooladmin_backend/internals/features/academics/classes/model"
	"schooladmin_backend/internals/features/finance/student_fees/dto"
	"schooladmin_backend/internals/features/finance/student_fees/model"
	"schooladmin_backend/internals/features/finance/student_fees/service"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/testutil/testdb"
)

func kindOf(err error) helper.ErrorKind {
	var ae *helper.AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type fixture struct {
	db      *gorm.DB
	link    classModel.StudentClassModel
	feeID   uuid.UUID
	classID uuid.UUID
	sessID  uuid.UUID
}

func setup(t *testing.T) fixture {
	t.Helper()
	h, err := testdb.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(h.Close)

	st := testdb.CreateStudent(t, h.DB)
	cl := testdb.CreateClass(t, h.DB)
	se := testdb.CreateSession(t, h.DB)
	fee := testdb.CreateFee(t, h.DB)

	link := classModel.StudentClassModel{
		StudentClassStudentID: st.StudentID,
		StudentClassClassID:   cl.ClassID,
		StudentClassSessionID: se.SessionID,
	}
	require.NoError(t, h.DB.Create(&link).Error)

	return fixture{db: h.DB, link: link, feeID: fee.FeeID, classID: cl.ClassID, sessID: se.SessionID}
}

func (f fixture) count(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.StudentFeeModel{}).Count(&n).Error)
	return n
}

func TestLedger_AssignComputesBreakdownOnRead(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewLedgerService(f.db)

	_, err := svc.Assign(ctx, dto.AssignFeeRequest{
		StudentClassID:      f.link.StudentClassID,
		FeeID:               f.feeID,
		Discount:            dec("100"),
		DiscountByPercent:   dec("10"),
		DiscountDescription: "sibling",
	})
	require.NoError(t, err)

	rows, err := svc.GetStudentFees(ctx, f.link.StudentClassID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	out := dto.ToStudentFeeResponses(rows)
	require.Len(t, out, 1)
	b := out[0].Breakdown
	assert.True(t, decimal.RequireFromString("3650").Equal(b.GrossTotal), b.GrossTotal.String())
	assert.True(t, decimal.RequireFromString("365").Equal(b.PercentDiscountAmount))
	assert.True(t, decimal.RequireFromString("3185").Equal(b.NetPayable))

	byClass, err := svc.GetFeeAssignmentsByClassAndSession(ctx, f.classID, f.sessID)
	require.NoError(t, err)
	assert.Len(t, byClass, 1)

	sum, err := svc.Summary(ctx, f.classID, f.sessID)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Count)
}

func TestLedger_RepeatedAssignmentsAreKept(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewLedgerService(f.db)

	for i := 0; i < 2; i++ {
		_, err := svc.Assign(ctx, dto.AssignFeeRequest{StudentClassID: f.link.StudentClassID, FeeID: f.feeID})
		require.NoError(t, err)
	}
	assert.EqualValues(t, 2, f.count(t))
}

func TestLedger_AssignRejectsOutOfRangePercent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewLedgerService(f.db)

	_, err := svc.Assign(ctx, dto.AssignFeeRequest{
		StudentClassID:    f.link.StudentClassID,
		FeeID:             f.feeID,
		DiscountByPercent: dec("150"),
	})
	require.Error(t, err)
	assert.Equal(t, helper.KindValidation, kindOf(err))
	assert.Zero(t, f.count(t))

	_, err = svc.Assign(ctx, dto.AssignFeeRequest{
		StudentClassID: f.link.StudentClassID,
		FeeID:          f.feeID,
		Discount:       dec("-5"),
	})
	assert.Equal(t, helper.KindValidation, kindOf(err))
	assert.Zero(t, f.count(t))
}

func TestLedger_AssignDanglingReferenceIsBadRequest(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewLedgerService(f.db)

	_, err := svc.Assign(ctx, dto.AssignFeeRequest{StudentClassID: uuid.New(), FeeID: f.feeID})
	assert.Equal(t, helper.KindBadRequest, kindOf(err))

	_, err = svc.Assign(ctx, dto.AssignFeeRequest{StudentClassID: f.link.StudentClassID, FeeID: uuid.New()})
	assert.Equal(t, helper.KindBadRequest, kindOf(err))
	assert.Zero(t, f.count(t))
}

func TestLedger_UpdateAndRemove(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := service.NewLedgerService(f.db)

	m, err := svc.Assign(ctx, dto.AssignFeeRequest{StudentClassID: f.link.StudentClassID, FeeID: f.feeID})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, m.StudentFeeID, dto.UpdateFeeAssignmentRequest{DiscountByPercent: dec("25")})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(25).Equal(updated.StudentFeeDiscountByPercent))
	assert.True(t, decimal.Zero.Equal(updated.StudentFeeDiscount))

	_, err = svc.Update(ctx, m.StudentFeeID, dto.UpdateFeeAssignmentRequest{DiscountByPercent: dec("100.01")})
	assert.Equal(t, helper.KindValidation, kindOf(err))

	_, err = svc.Update(ctx, uuid.New(), dto.UpdateFeeAssignmentRequest{Discount: dec("1")})
	assert.Equal(t, helper.KindBadRequest, kindOf(err))

	require.NoError(t, svc.Remove(ctx, m.StudentFeeID))
	assert.Zero(t, f.count(t))

	err = svc.Remove(ctx, m.StudentFeeID)
	assert.Equal(t, helper.KindBadRequest, kindOf(err))
}
