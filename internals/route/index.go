// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/features/reports/catalog"
	authRoute "schooladmin_backend/internals/features/users/auth/route"
	helperAuth "schooladmin_backend/internals/helpers/auth"
	authMiddleware "schooladmin_backend/internals/middlewares/auth"
	routeDetails "schooladmin_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, cat *catalog.Catalog, log *zap.Logger) {
	startTime = time.Now()

	BaseRoutes(app, db, cfg)

	// ===================== AUTH =====================
	authRoute.AuthRoutes(app, db, cfg, log)

	// ===================== ADMIN =====================
	log.Info("setting up ADMIN group (auth + role check)")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(cfg.JWTSecret, log),
		authMiddleware.OnlyRoles(helperAuth.RoleAdmin, helperAuth.RoleAccountant),
	)

	// ===================== MOUNT ROUTES =====================
	log.Info("mounting school routes")
	routeDetails.SchoolAdminRoutes(admin, db)

	log.Info("mounting finance routes")
	routeDetails.FinanceAdminRoutes(admin, db, cat)

	log.Info("mounting user admin routes")
	authRoute.UserAdminRoutes(admin, db)
}
