package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	authService "schooladmin_backend/internals/features/users/auth/service"
)

// RunAllSeeds brings a fresh database to a usable state. Every seed is idempotent.
func RunAllSeeds(ctx context.Context, db *gorm.DB, cfg *configs.Config, log *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}
	created, err := authService.NewUserService(db).EnsureAdmin(ctx, "Administrator", cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		log.Info("admin account created", zap.String("email", cfg.AdminEmail))
	}
	return nil
}
