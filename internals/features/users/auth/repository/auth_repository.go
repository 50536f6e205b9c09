// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooladmin_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.WithContext(ctx).Where("lower(user_email) = lower(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, user *model.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, hash string) error {
	return db.WithContext(ctx).Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", hash).Error
}

func TouchLastLogin(ctx context.Context, db *gorm.DB, userID uuid.UUID, at time.Time) error {
	return db.WithContext(ctx).Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		UpdateColumn("user_last_login", at).Error
}

func CountActiveAdmins(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.UserModel{}).
		Where("user_role = ? AND user_is_active", "admin").
		Count(&n).Error
	return n, err
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(ctx context.Context, db *gorm.DB, token *model.RefreshTokenModel) error {
	return db.WithContext(ctx).Create(token).Error
}

// FindRefreshToken only returns tokens that have not expired yet.
func FindRefreshToken(ctx context.Context, db *gorm.DB, hash []byte, now time.Time) (*model.RefreshTokenModel, error) {
	var rt model.RefreshTokenModel
	if err := db.WithContext(ctx).
		Where("refresh_token_hash = ? AND refresh_token_expires_at > ?", hash, now).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(ctx context.Context, db *gorm.DB, hash []byte) (int64, error) {
	res := db.WithContext(ctx).Where("refresh_token_hash = ?", hash).Delete(&model.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}

func DeleteRefreshTokensByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	return db.WithContext(ctx).Where("refresh_token_user_id = ?", userID).Delete(&model.RefreshTokenModel{}).Error
}

func DeleteExpiredRefreshTokens(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("refresh_token_expires_at < ?", before).Delete(&model.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}
