package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

type EmployeeModel struct {
	EmployeeID          uuid.UUID       `json:"employee_id" gorm:"column:employee_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EmployeeCode        string          `json:"employee_code" gorm:"column:employee_code;type:varchar(40);not null"`
	EmployeeFullName    string          `json:"employee_full_name" gorm:"column:employee_full_name;type:varchar(160);not null"`
	EmployeeDesignation string          `json:"employee_designation" gorm:"column:employee_designation;type:varchar(80);not null;default:''"`
	EmployeeDepartment  string          `json:"employee_department" gorm:"column:employee_department;type:varchar(80);not null;default:''"`
	EmployeePhone       string          `json:"employee_phone" gorm:"column:employee_phone;type:varchar(30);not null;default:''"`
	EmployeeEmail       *string         `json:"employee_email,omitempty" gorm:"column:employee_email;type:varchar(160)"`
	EmployeeJoiningDate *datatypes.Date `json:"employee_joining_date,omitempty" gorm:"column:employee_joining_date;type:date"`
	EmployeeStatus      EmployeeStatus  `json:"employee_status" gorm:"column:employee_status;type:varchar(10);not null;default:'active'"`

	EmployeeCreatedAt time.Time      `json:"employee_created_at" gorm:"column:employee_created_at;type:timestamptz;not null;autoCreateTime"`
	EmployeeUpdatedAt time.Time      `json:"employee_updated_at" gorm:"column:employee_updated_at;type:timestamptz;not null;autoUpdateTime"`
	EmployeeDeletedAt gorm.DeletedAt `json:"employee_deleted_at,omitempty" gorm:"column:employee_deleted_at;type:timestamptz;index"`
}

func (EmployeeModel) TableName() string { return "employees" }
