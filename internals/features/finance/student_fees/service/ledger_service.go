package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/finance/student_fees/dto"
	"schooladmin_backend/internals/features/finance/student_fees/model"
	helper "schooladmin_backend/internals/helpers"
)

type LedgerService struct {
	DB *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db}
}

// Assign checks discount ranges before the insert; a dangling enrollment or fee id
// comes back from the store as a foreign key violation and is reported as BadRequest.
// Repeated assignments of the same fee to the same enrollment are allowed.
func (s *LedgerService) Assign(ctx context.Context, req dto.AssignFeeRequest) (*model.StudentFeeModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, helper.MapWriteError(err, "fee assignment")
	}
	return &m, nil
}

func (s *LedgerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateFeeAssignmentRequest) (*model.StudentFeeModel, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	db := s.DB.WithContext(ctx)

	var m model.StudentFeeModel
	if err := db.First(&m, "student_fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.BadRequest("fee assignment does not exist, check provided data", err)
		}
		return nil, helper.Internal(err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return nil, helper.MapWriteError(err, "fee assignment")
	}
	return &m, nil
}

func (s *LedgerService) Remove(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&model.StudentFeeModel{}, "student_fee_id = ?", id)
	if res.Error != nil {
		return helper.MapDeleteError(res.Error, "fee assignment")
	}
	if res.RowsAffected == 0 {
		return helper.BadRequest("fee assignment does not exist, check provided data", nil)
	}
	return nil
}

func (s *LedgerService) GetStudentFees(ctx context.Context, studentClassID uuid.UUID) ([]dto.LedgerRow, error) {
	var rows []dto.LedgerRow
	err := s.ledgerQuery(ctx).
		Where("sf.student_fee_student_class_id = ?", studentClassID).
		Order("sf.student_fee_created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, helper.Internal(err)
	}
	return rows, nil
}

func (s *LedgerService) GetFeeAssignmentsByClassAndSession(ctx context.Context, classID, sessionID uuid.UUID) ([]dto.LedgerRow, error) {
	var rows []dto.LedgerRow
	err := s.ledgerQuery(ctx).
		Where("sc.student_class_class_id = ? AND sc.student_class_session_id = ?", classID, sessionID).
		Order("st.student_first_name ASC, st.student_last_name ASC, sf.student_fee_created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, helper.Internal(err)
	}
	return rows, nil
}

func (s *LedgerService) Summary(ctx context.Context, classID, sessionID uuid.UUID) (dto.ClassFeeSummary, error) {
	rows, err := s.GetFeeAssignmentsByClassAndSession(ctx, classID, sessionID)
	if err != nil {
		return dto.ClassFeeSummary{}, err
	}
	return dto.Summarize(classID, sessionID, rows), nil
}

func (s *LedgerService) ledgerQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("student_fees AS sf").
		Select(`sf.student_fee_id, sf.student_fee_student_class_id, sf.student_fee_fee_id,
			sf.student_fee_discount, sf.student_fee_discount_by_percent, sf.student_fee_discount_description,
			sf.student_fee_created_at, sf.student_fee_updated_at,
			f.fee_name, f.fee_type, f.fee_tuition_fee, f.fee_exam_fund, f.fee_computer_lab_fund,
			f.fee_student_id_card_fee, f.fee_info_and_calls_fee, f.fee_admission_fee,
			st.student_id, st.student_registration_no, st.student_first_name, st.student_last_name,
			cl.class_id, cl.class_name, se.session_id, se.session_name`).
		Joins("JOIN fees f ON f.fee_id = sf.student_fee_fee_id").
		Joins("JOIN student_classes sc ON sc.student_class_id = sf.student_fee_student_class_id").
		Joins("JOIN students st ON st.student_id = sc.student_class_student_id").
		Joins("JOIN classes cl ON cl.class_id = sc.student_class_class_id").
		Joins("JOIN academic_sessions se ON se.session_id = sc.student_class_session_id")
}
