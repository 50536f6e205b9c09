package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/academics/classes/dto"
	"schooladmin_backend/internals/features/academics/classes/model"
	sessionModel "schooladmin_backend/internals/features/academics/sessions/model"
	ledgerModel "schooladmin_backend/internals/features/finance/student_fees/model"
	studentModel "schooladmin_backend/internals/features/students/model"
	helper "schooladmin_backend/internals/helpers"
)

type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// AddToClass checks the three references, flags the student as assigned and creates
// the link in one transaction. Any failure leaves the flag untouched.
func (s *EnrollmentService) AddToClass(ctx context.Context, classID, studentID, sessionID uuid.UUID) (*model.StudentClassModel, error) {
	var link model.StudentClassModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.ClassModel{}, "class_id", classID, "class"); err != nil {
			return err
		}
		if err := mustExist(tx, &studentModel.StudentModel{}, "student_id", studentID, "student"); err != nil {
			return err
		}
		if err := mustExist(tx, &sessionModel.SessionModel{}, "session_id", sessionID, "session"); err != nil {
			return err
		}

		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", studentID).
			Update("student_is_assigned", true).Error; err != nil {
			return helper.Internal(err)
		}

		link = model.StudentClassModel{
			StudentClassStudentID: studentID,
			StudentClassClassID:   classID,
			StudentClassSessionID: sessionID,
		}
		if err := tx.Create(&link).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.Conflict("student is already enrolled in this class for the session", err)
			}
			return helper.MapWriteError(err, "enrollment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *EnrollmentService) GetStudentsInClass(ctx context.Context, classID uuid.UUID) ([]dto.EnrollmentRow, error) {
	return s.listEnrollments(ctx, classID, nil)
}

func (s *EnrollmentService) GetStudentsByClassAndSession(ctx context.Context, classID, sessionID uuid.UUID) ([]dto.EnrollmentRow, error) {
	return s.listEnrollments(ctx, classID, &sessionID)
}

func (s *EnrollmentService) listEnrollments(ctx context.Context, classID uuid.UUID, sessionID *uuid.UUID) ([]dto.EnrollmentRow, error) {
	q := s.DB.WithContext(ctx).
		Table("student_classes AS sc").
		Select(`sc.student_class_id, sc.student_class_created_at,
			st.student_id, st.student_registration_no, st.student_first_name, st.student_last_name, st.student_is_assigned,
			cl.class_id, cl.class_name, cl.class_level,
			se.session_id, se.session_name`).
		Joins("JOIN students st ON st.student_id = sc.student_class_student_id AND st.student_deleted_at IS NULL").
		Joins("JOIN classes cl ON cl.class_id = sc.student_class_class_id").
		Joins("JOIN academic_sessions se ON se.session_id = sc.student_class_session_id").
		Where("sc.student_class_class_id = ?", classID)
	if sessionID != nil {
		q = q.Where("sc.student_class_session_id = ?", *sessionID)
	}

	var rows []dto.EnrollmentRow
	if err := q.Order("se.session_start_date DESC, st.student_first_name ASC, st.student_last_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, helper.Internal(err)
	}
	return rows, nil
}

// DeleteStudentsFromClass removes the matching enrollment links of a class/session.
// Ledger rows go first, then the links, then every listed student's assigned flag is
// cleared. The three steps commit together or not at all.
func (s *EnrollmentService) DeleteStudentsFromClass(ctx context.Context, studentIDs []uuid.UUID, classID, sessionID uuid.UUID) (dto.RemoveStudentsResult, error) {
	if len(studentIDs) == 0 {
		return dto.RemoveStudentsResult{}, helper.FieldError("student_ids", "is required")
	}
	students := pq.StringArray(helper.UUIDStrings(studentIDs))

	var out dto.RemoveStudentsResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var linkIDs []string
		if err := tx.Model(&model.StudentClassModel{}).
			Where("student_class_student_id = ANY(?::uuid[])", students).
			Where("student_class_class_id = ? AND student_class_session_id = ?", classID, sessionID).
			Pluck("student_class_id", &linkIDs).Error; err != nil {
			return err
		}

		if len(linkIDs) > 0 {
			links := pq.StringArray(linkIDs)

			res := tx.Where("student_fee_student_class_id = ANY(?::uuid[])", links).
				Delete(&ledgerModel.StudentFeeModel{})
			if res.Error != nil {
				return res.Error
			}
			out.FeeAssignmentsRemoved = res.RowsAffected

			res = tx.Where("student_class_id = ANY(?::uuid[])", links).
				Delete(&model.StudentClassModel{})
			if res.Error != nil {
				return res.Error
			}
			out.LinksRemoved = res.RowsAffected
		}

		return tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ANY(?::uuid[])", students).
			Update("student_is_assigned", false).Error
	})
	if err != nil {
		return dto.RemoveStudentsResult{}, helper.Internal(err)
	}

	out.Success = true
	out.Message = fmt.Sprintf("%d student(s) removed from class", out.LinksRemoved)
	return out, nil
}

// mustExist is a cheap existence probe; soft-deleted rows count as missing.
func mustExist(tx *gorm.DB, m any, column string, id uuid.UUID, entity string) error {
	var n int64
	if err := tx.Model(m).Where(column+" = ?", id).Limit(1).Count(&n).Error; err != nil {
		return helper.Internal(err)
	}
	if n == 0 {
		return helper.NotFound("%s %s not found", entity, id)
	}
	return nil
}
