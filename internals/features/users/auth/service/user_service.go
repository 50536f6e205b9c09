package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/users/auth/dto"
	"schooladmin_backend/internals/features/users/auth/model"
	authRepo "schooladmin_backend/internals/features/users/auth/repository"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

// UserService manages staff accounts. Only admins reach it.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.UserModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	hash, err := HashPassword(req.UserPassword)
	if err != nil {
		return nil, helper.Internal(err)
	}
	m := model.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: hash,
		UserRole:     req.UserRole,
		UserIsActive: true,
	}
	if err := authRepo.CreateUser(ctx, s.DB, &m); err != nil {
		return nil, helper.MapWriteError(err, "user")
	}
	return &m, nil
}

func (s *UserService) List(ctx context.Context, q, role string, p helper.Params) ([]model.UserModel, int64, error) {
	db := s.DB.WithContext(ctx).Model(&model.UserModel{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + q + "%"
		db = db.Where("user_name ILIKE ? OR user_email ILIKE ?", like, like)
	}
	if role = strings.ToLower(strings.TrimSpace(role)); role != "" {
		db = db.Where("user_role = ?", role)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, helper.Internal(err)
	}
	var rows []model.UserModel
	err := db.Order(p.OrderClause(map[string]string{
		"name":       "user_name",
		"email":      "user_email",
		"created_at": "user_created_at",
	}, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, helper.Internal(err)
	}
	return rows, total, nil
}

// Update refuses to demote or disable the last active admin.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	var out *model.UserModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := authRepo.FindUserByID(ctx, tx, id)
		if err != nil {
			return helper.MapReadError(err, "user")
		}
		wasAdmin := m.UserRole == helperAuth.RoleAdmin && m.UserIsActive
		req.Apply(m)
		stillAdmin := m.UserRole == helperAuth.RoleAdmin && m.UserIsActive

		if wasAdmin && !stillAdmin {
			n, err := authRepo.CountActiveAdmins(ctx, tx)
			if err != nil {
				return helper.Internal(err)
			}
			if n <= 1 {
				return helper.Conflict("cannot demote or disable the last active admin", nil)
			}
		}
		if err := tx.Save(m).Error; err != nil {
			return helper.MapWriteError(err, "user")
		}
		if !m.UserIsActive {
			if err := authRepo.DeleteRefreshTokensByUser(ctx, tx, m.UserID); err != nil {
				return helper.Internal(err)
			}
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureAdmin creates the first admin account when no active admin exists.
// It reports whether a user was created.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	n, err := authRepo.CountActiveAdmins(ctx, s.DB)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if _, err := s.Create(ctx, dto.CreateUserRequest{
		UserName:     name,
		UserEmail:    email,
		UserPassword: password,
		UserRole:     helperAuth.RoleAdmin,
	}); err != nil {
		return false, err
	}
	return true, nil
}
