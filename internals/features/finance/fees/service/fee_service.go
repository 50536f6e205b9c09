package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/finance/fees/dto"
	"schooladmin_backend/internals/features/finance/fees/model"
	helper "schooladmin_backend/internals/helpers"
)

type FeeService struct {
	DB *gorm.DB
}

func NewFeeService(db *gorm.DB) *FeeService {
	return &FeeService{DB: db}
}

// Create validates before touching the store.
func (s *FeeService) Create(ctx context.Context, req dto.CreateFeeRequest) (*model.FeeModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, helper.MapWriteError(err, "fee")
	}
	return &m, nil
}

func (s *FeeService) Get(ctx context.Context, id uuid.UUID) (*model.FeeModel, error) {
	var m model.FeeModel
	if err := s.DB.WithContext(ctx).First(&m, "fee_id = ?", id).Error; err != nil {
		return nil, helper.MapReadError(err, "fee")
	}
	return &m, nil
}

func (s *FeeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateFeeRequest) (*model.FeeModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(m)
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return nil, helper.MapWriteError(err, "fee")
	}
	return m, nil
}

// DeleteByIDs removes every listed fee in one statement. A fee still used by a
// ledger row makes the whole delete fail with Conflict and nothing is removed.
func (s *FeeService) DeleteByIDs(ctx context.Context, rawIDs string) (int64, error) {
	ids, err := helper.ParseUUIDList("fee_ids", rawIDs)
	if err != nil {
		return 0, err
	}
	res := s.DB.WithContext(ctx).
		Where("fee_id = ANY(?::uuid[])", pq.StringArray(helper.UUIDStrings(ids))).
		Delete(&model.FeeModel{})
	if res.Error != nil {
		return 0, helper.MapDeleteError(res.Error, "fee")
	}
	return res.RowsAffected, nil
}

// List returns every fee; re-running it always reflects the current rows.
func (s *FeeService) List(ctx context.Context, feeType string) ([]model.FeeModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.FeeModel{})
	if feeType != "" {
		q = q.Where("fee_type = ?", feeType)
	}
	var rows []model.FeeModel
	if err := q.Order("fee_name ASC, fee_created_at ASC").Find(&rows).Error; err != nil {
		return nil, helper.Internal(err)
	}
	return rows, nil
}

func ToResponse(m model.FeeModel) dto.FeeResponse {
	return dto.ToFeeResponse(m, GrossAnnualTotal(m), GrossTotal(m))
}

func ToResponses(rows []model.FeeModel) []dto.FeeResponse {
	out := make([]dto.FeeResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToResponse(m))
	}
	return out
}
