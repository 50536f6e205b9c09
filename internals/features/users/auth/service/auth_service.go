// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/features/users/auth/dto"
	"schooladmin_backend/internals/features/users/auth/model"
	authRepo "schooladmin_backend/internals/features/users/auth/repository"
	helper "schooladmin_backend/internals/helpers"
)

var errBadCredentials = fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")

// ClientInfo is stored next to each refresh token.
type ClientInfo struct {
	UserAgent string
	IP        string
}

type AuthService struct {
	DB     *gorm.DB
	Tokens TokenIssuer
	now    func() time.Time
}

func NewAuthService(db *gorm.DB, cfg *configs.Config) *AuthService {
	return &AuthService{
		DB: db,
		Tokens: TokenIssuer{
			AccessSecret:  []byte(cfg.JWTSecret),
			RefreshSecret: []byte(cfg.JWTRefreshSecret),
			AccessTTL:     cfg.AccessTokenTTL,
			RefreshTTL:    cfg.RefreshTokenTTL,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

/* ==========================
   LOGIN / REFRESH / LOGOUT
========================== */

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest, client ClientInfo) (*dto.LoginResponse, error) {
	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := authRepo.FindUserByEmail(ctx, s.DB, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errBadCredentials
		}
		return nil, helper.Internal(err)
	}
	if !CheckPassword(user.UserPassword, req.Password) {
		return nil, errBadCredentials
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "account is disabled")
	}

	now := s.now()
	pair, err := s.issuePair(ctx, s.DB, *user, client, now)
	if err != nil {
		return nil, err
	}
	if err := authRepo.TouchLastLogin(ctx, s.DB, user.UserID, now); err != nil {
		return nil, helper.Internal(err)
	}
	user.UserLastLogin = &now

	return &dto.LoginResponse{User: dto.ToUserResponse(*user), Tokens: *pair}, nil
}

// Refresh rotates the refresh token: the presented one is deleted and a new pair
// is issued in the same transaction. A token can be used once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string, client ClientInfo) (*dto.TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "refresh token missing")
	}
	userID, err := s.Tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "refresh token invalid")
	}

	now := s.now()
	hash := s.Tokens.RefreshHash(refreshToken)

	var pair *dto.TokenPair
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rt, err := authRepo.FindRefreshToken(ctx, tx, hash, now)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "refresh token unknown")
			}
			return helper.Internal(err)
		}
		if rt.RefreshTokenUserID != userID {
			return fiber.NewError(fiber.StatusUnauthorized, "refresh token invalid")
		}
		if _, err := authRepo.DeleteRefreshTokenByHash(ctx, tx, hash); err != nil {
			return helper.Internal(err)
		}

		user, err := authRepo.FindUserByID(ctx, tx, userID)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "user not found")
		}
		if !user.UserIsActive {
			return fiber.NewError(fiber.StatusForbidden, "account is disabled")
		}
		pair, err = s.issuePair(ctx, tx, *user, client, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout forgets the refresh token; an unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil
	}
	if _, err := authRepo.DeleteRefreshTokenByHash(ctx, s.DB, s.Tokens.RefreshHash(refreshToken)); err != nil {
		return helper.Internal(err)
	}
	return nil
}

func (s *AuthService) issuePair(ctx context.Context, db *gorm.DB, user model.UserModel, client ClientInfo, now time.Time) (*dto.TokenPair, error) {
	access, accessExp, err := s.Tokens.IssueAccess(user, now)
	if err != nil {
		return nil, helper.Internal(err)
	}
	refresh, refreshExp, err := s.Tokens.IssueRefresh(user.UserID, now)
	if err != nil {
		return nil, helper.Internal(err)
	}
	if err := authRepo.CreateRefreshToken(ctx, db, &model.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      s.Tokens.RefreshHash(refresh),
		RefreshTokenExpiresAt: refreshExp,
		RefreshTokenUserAgent: strptr(client.UserAgent),
		RefreshTokenIP:        strptr(client.IP),
	}); err != nil {
		return nil, helper.Internal(err)
	}
	return &dto.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

/* ==========================
   ME / PASSWORD
========================== */

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*model.UserModel, error) {
	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		return nil, helper.MapReadError(err, "user")
	}
	return user, nil
}

// ChangePassword signs the user out everywhere by dropping every refresh token.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req dto.ChangePasswordRequest) error {
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		return helper.MapReadError(err, "user")
	}
	if !CheckPassword(user.UserPassword, req.CurrentPassword) {
		return helper.FieldError("current_password", "is incorrect")
	}
	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return helper.Internal(err)
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := authRepo.UpdateUserPassword(ctx, tx, userID, hash); err != nil {
			return helper.Internal(err)
		}
		if err := authRepo.DeleteRefreshTokensByUser(ctx, tx, userID); err != nil {
			return helper.Internal(err)
		}
		return nil
	})
}

func strptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
