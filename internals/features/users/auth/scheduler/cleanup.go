package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepo "schooladmin_backend/internals/features/users/auth/repository"
)

// StartRefreshTokenCleanup deletes expired refresh tokens on the given cron schedule.
// The caller stops the returned cron on shutdown.
func StartRefreshTokenCleanup(db *gorm.DB, schedule string, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		RunRefreshTokenCleanup(context.Background(), db, log)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Info("refresh token cleanup scheduled", zap.String("schedule", schedule))
	return c, nil
}

func RunRefreshTokenCleanup(ctx context.Context, db *gorm.DB, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	n, err := authRepo.DeleteExpiredRefreshTokens(ctx, db, time.Now().UTC())
	if err != nil {
		log.Error("refresh token cleanup failed", zap.Error(err))
		return
	}
	log.Info("refresh token cleanup done", zap.Int64("deleted", n))
}
