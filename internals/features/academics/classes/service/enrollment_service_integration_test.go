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

	"schooladmin_backend/internals/features/academics/classes/model"
	"schooladmin_backend/internals/features/academics/classes/service"
	ledgerModel "schooladmin_backend/internals/features/finance/student_fees/model"
	studentModel "schooladmin_backend/internals/features/students/model"
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

func TestAddToClass_LinksAndFlags(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewEnrollmentService(h.DB)

	st := testdb.CreateStudent(t, h.DB)
	cl := testdb.CreateClass(t, h.DB)
	se := testdb.CreateSession(t, h.DB)

	link, err := svc.AddToClass(ctx, cl.ClassID, st.StudentID, se.SessionID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, link.StudentClassID)

	var got studentModel.StudentModel
	require.NoError(t, h.DB.First(&got, "student_id = ?", st.StudentID).Error)
	assert.True(t, got.StudentIsAssigned)

	rows, err := svc.GetStudentsByClassAndSession(ctx, cl.ClassID, se.SessionID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, st.StudentID, rows[0].StudentID)
	assert.Equal(t, cl.ClassName, rows[0].ClassName)
	assert.Equal(t, se.SessionName, rows[0].SessionName)

	all, err := svc.GetStudentsInClass(ctx, cl.ClassID)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// same triple again
	_, err = svc.AddToClass(ctx, cl.ClassID, st.StudentID, se.SessionID)
	assert.Equal(t, helper.KindConflict, kindOf(err))
}

func TestAddToClass_MissingSessionLeavesFlagUntouched(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewEnrollmentService(h.DB)

	st := testdb.CreateStudent(t, h.DB)
	cl := testdb.CreateClass(t, h.DB)

	_, err := svc.AddToClass(ctx, cl.ClassID, st.StudentID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, helper.KindNotFound, kindOf(err))
	assert.Contains(t, err.Error(), "session")

	var got studentModel.StudentModel
	require.NoError(t, h.DB.First(&got, "student_id = ?", st.StudentID).Error)
	assert.False(t, got.StudentIsAssigned)

	var links int64
	require.NoError(t, h.DB.Model(&model.StudentClassModel{}).
		Where("student_class_student_id = ?", st.StudentID).Count(&links).Error)
	assert.Zero(t, links)
}

func TestAddToClass_MissingClassOrStudent(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewEnrollmentService(h.DB)

	st := testdb.CreateStudent(t, h.DB)
	se := testdb.CreateSession(t, h.DB)
	cl := testdb.CreateClass(t, h.DB)

	_, err := svc.AddToClass(ctx, uuid.New(), st.StudentID, se.SessionID)
	assert.Equal(t, helper.KindNotFound, kindOf(err))
	assert.Contains(t, err.Error(), "class")

	_, err = svc.AddToClass(ctx, cl.ClassID, uuid.New(), se.SessionID)
	assert.Equal(t, helper.KindNotFound, kindOf(err))
	assert.Contains(t, err.Error(), "student")
}

func TestDeleteStudentsFromClass_RemovesLedgerLinksAndFlag(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewEnrollmentService(h.DB)

	cl := testdb.CreateClass(t, h.DB)
	se := testdb.CreateSession(t, h.DB)
	fee := testdb.CreateFee(t, h.DB)

	var ids []uuid.UUID
	var linkIDs []uuid.UUID
	for i := 0; i < 2; i++ {
		st := testdb.CreateStudent(t, h.DB)
		link, err := svc.AddToClass(ctx, cl.ClassID, st.StudentID, se.SessionID)
		require.NoError(t, err)
		ids = append(ids, st.StudentID)
		linkIDs = append(linkIDs, link.StudentClassID)

		for j := 0; j < 2; j++ {
			row := ledgerModel.StudentFeeModel{
				StudentFeeStudentClassID:    link.StudentClassID,
				StudentFeeFeeID:             fee.FeeID,
				StudentFeeDiscount:          decimal.NewFromInt(10),
				StudentFeeDiscountByPercent: decimal.Zero,
			}
			require.NoError(t, h.DB.Create(&row).Error)
		}
	}

	res, err := svc.DeleteStudentsFromClass(ctx, ids, cl.ClassID, se.SessionID)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.EqualValues(t, 2, res.LinksRemoved)
	assert.EqualValues(t, 4, res.FeeAssignmentsRemoved)

	var ledger int64
	require.NoError(t, h.DB.Model(&ledgerModel.StudentFeeModel{}).
		Where("student_fee_student_class_id IN ?", linkIDs).Count(&ledger).Error)
	assert.Zero(t, ledger)

	var links int64
	require.NoError(t, h.DB.Model(&model.StudentClassModel{}).
		Where("student_class_id IN ?", linkIDs).Count(&links).Error)
	assert.Zero(t, links)

	var assigned int64
	require.NoError(t, h.DB.Model(&studentModel.StudentModel{}).
		Where("student_id IN ? AND student_is_assigned", ids).Count(&assigned).Error)
	assert.Zero(t, assigned)
}

func TestDeleteStudentsFromClass_OtherEnrollmentsUntouched(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewEnrollmentService(h.DB)

	cl := testdb.CreateClass(t, h.DB)
	other := testdb.CreateClass(t, h.DB)
	se := testdb.CreateSession(t, h.DB)
	st := testdb.CreateStudent(t, h.DB)
	keep := testdb.CreateStudent(t, h.DB)

	_, err := svc.AddToClass(ctx, cl.ClassID, st.StudentID, se.SessionID)
	require.NoError(t, err)
	_, err = svc.AddToClass(ctx, cl.ClassID, keep.StudentID, se.SessionID)
	require.NoError(t, err)
	_, err = svc.AddToClass(ctx, other.ClassID, st.StudentID, se.SessionID)
	require.NoError(t, err)

	_, err = svc.DeleteStudentsFromClass(ctx, []uuid.UUID{st.StudentID}, cl.ClassID, se.SessionID)
	require.NoError(t, err)

	rows, err := svc.GetStudentsByClassAndSession(ctx, cl.ClassID, se.SessionID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, keep.StudentID, rows[0].StudentID)

	rows, err = svc.GetStudentsInClass(ctx, other.ClassID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// every listed student is cleared, even one still enrolled elsewhere
	var got studentModel.StudentModel
	require.NoError(t, h.DB.First(&got, "student_id = ?", st.StudentID).Error)
	assert.False(t, got.StudentIsAssigned)
	require.NoError(t, h.DB.First(&got, "student_id = ?", keep.StudentID).Error)
	assert.True(t, got.StudentIsAssigned)
}

func TestDeleteStudentsFromClass_FailedFlagClearRollsBack(t *testing.T) {
	h := startDB(t)
	ctx := context.Background()
	svc := service.NewEnrollmentService(h.DB)

	cl := testdb.CreateClass(t, h.DB)
	se := testdb.CreateSession(t, h.DB)
	fee := testdb.CreateFee(t, h.DB)
	st := testdb.CreateStudent(t, h.DB)

	link, err := svc.AddToClass(ctx, cl.ClassID, st.StudentID, se.SessionID)
	require.NoError(t, err)
	row := ledgerModel.StudentFeeModel{
		StudentFeeStudentClassID:    link.StudentClassID,
		StudentFeeFeeID:             fee.FeeID,
		StudentFeeDiscount:          decimal.Zero,
		StudentFeeDiscountByPercent: decimal.Zero,
	}
	require.NoError(t, h.DB.Create(&row).Error)

	// the last step, clearing the flag, fails after ledger rows and links are gone
	const cb = "test:fail_student_update"
	require.NoError(t, h.DB.Callback().Update().Before("gorm:update").Register(cb, func(db *gorm.DB) {
		if db.Statement.Table == "students" {
			_ = db.AddError(errors.New("forced failure"))
		}
	}))
	t.Cleanup(func() { _ = h.DB.Callback().Update().Remove(cb) })

	_, err = svc.DeleteStudentsFromClass(ctx, []uuid.UUID{st.StudentID}, cl.ClassID, se.SessionID)
	require.Error(t, err)
	assert.Equal(t, helper.KindInternal, kindOf(err))

	var ledger int64
	require.NoError(t, h.DB.Model(&ledgerModel.StudentFeeModel{}).
		Where("student_fee_student_class_id = ?", link.StudentClassID).Count(&ledger).Error)
	assert.EqualValues(t, 1, ledger)

	var links int64
	require.NoError(t, h.DB.Model(&model.StudentClassModel{}).
		Where("student_class_id = ?", link.StudentClassID).Count(&links).Error)
	assert.EqualValues(t, 1, links)

	var got studentModel.StudentModel
	require.NoError(t, h.DB.First(&got, "student_id = ?", st.StudentID).Error)
	assert.True(t, got.StudentIsAssigned)
}
