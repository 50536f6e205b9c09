// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type StudentModel struct {
	StudentID             uuid.UUID       `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentRegistrationNo string          `json:"student_registration_no" gorm:"column:student_registration_no;type:varchar(40);not null"`
	StudentFirstName      string          `json:"student_first_name" gorm:"column:student_first_name;type:varchar(80);not null"`
	StudentLastName       string          `json:"student_last_name" gorm:"column:student_last_name;type:varchar(80);not null;default:''"`
	StudentGender         Gender          `json:"student_gender" gorm:"column:student_gender;type:varchar(10);not null;default:'other'"`
	StudentDateOfBirth    *datatypes.Date `json:"student_date_of_birth,omitempty" gorm:"column:student_date_of_birth;type:date"`
	StudentGuardianName   string          `json:"student_guardian_name" gorm:"column:student_guardian_name;type:varchar(120);not null;default:''"`
	StudentPhone          string          `json:"student_phone" gorm:"column:student_phone;type:varchar(30);not null;default:''"`
	StudentEmail          *string         `json:"student_email,omitempty" gorm:"column:student_email;type:varchar(160)"`
	StudentAddress        string          `json:"student_address" gorm:"column:student_address;type:text;not null;default:''"`

	// true while the student has at least one enrollment link
	StudentIsAssigned bool `json:"student_is_assigned" gorm:"column:student_is_assigned;not null;default:false"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;type:timestamptz;index"`
}

func (StudentModel) TableName() string { return "students" }

func (m StudentModel) FullName() string {
	if m.StudentLastName == "" {
		return m.StudentFirstName
	}
	return m.StudentFirstName + " " + m.StudentLastName
}
