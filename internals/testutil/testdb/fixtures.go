//go:build testutil
// +build testutil

package testdb

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	classModel "schooladmin_backend/internals/features/academics/classes/model"
	sessionModel "schooladmin_backend/internals/features/academics/sessions/model"
	subjectModel "schooladmin_backend/internals/features/academics/subjects/model"
	employeeModel "schooladmin_backend/internals/features/employees/model"
	feeModel "schooladmin_backend/internals/features/finance/fees/model"
	studentModel "schooladmin_backend/internals/features/students/model"
)

// Short unique suffix for names covered by unique constraints.
func suffix() string { return uuid.NewString()[:8] }

func CreateStudent(t *testing.T, db *gorm.DB) studentModel.StudentModel {
	t.Helper()
	m := studentModel.StudentModel{
		StudentRegistrationNo: "REG-" + suffix(),
		StudentFirstName:      "Test",
		StudentLastName:       "Student",
		StudentGender:         studentModel.GenderOther,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return m
}

func CreateClass(t *testing.T, db *gorm.DB) classModel.ClassModel {
	t.Helper()
	m := classModel.ClassModel{ClassName: "Class " + suffix(), ClassLevel: "Primary"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create class: %v", err)
	}
	return m
}

func CreateSession(t *testing.T, db *gorm.DB) sessionModel.SessionModel {
	t.Helper()
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	m := sessionModel.SessionModel{
		SessionName:      "S-" + suffix(),
		SessionStartDate: datatypes.Date(start),
		SessionEndDate:   datatypes.Date(start.AddDate(1, 0, -1)),
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}
	return m
}

func CreateFee(t *testing.T, db *gorm.DB) feeModel.FeeModel {
	t.Helper()
	m := feeModel.FeeModel{
		FeeName:             "Grade " + suffix(),
		FeeType:             feeModel.FeeTypeAnnual,
		FeeTuitionFee:       decimal.NewFromInt(2000),
		FeeExamFund:         decimal.NewFromInt(500),
		FeeStudentIDCardFee: decimal.NewFromInt(100),
		FeeInfoAndCallsFee:  decimal.NewFromInt(50),
		FeeAdmissionFee:     decimal.NewFromInt(1000),
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create fee: %v", err)
	}
	return m
}

func CreateSubject(t *testing.T, db *gorm.DB) subjectModel.SubjectModel {
	t.Helper()
	m := subjectModel.SubjectModel{SubjectName: "Subject " + suffix(), SubjectCode: "SUB-" + suffix()}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create subject: %v", err)
	}
	return m
}

func CreateEmployee(t *testing.T, db *gorm.DB) employeeModel.EmployeeModel {
	t.Helper()
	m := employeeModel.EmployeeModel{
		EmployeeCode:     "EMP-" + suffix(),
		EmployeeFullName: "Test Employee",
		EmployeeStatus:   employeeModel.EmployeeActive,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return m
}

// Enroll inserts the link row directly, without touching the assigned flag.
func Enroll(t *testing.T, db *gorm.DB, studentID, classID, sessionID uuid.UUID) classModel.StudentClassModel {
	t.Helper()
	m := classModel.StudentClassModel{
		StudentClassStudentID: studentID,
		StudentClassClassID:   classID,
		StudentClassSessionID: sessionID,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("enroll: %v", err)
	}
	return m
}
