// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/features/users/auth/controller"
	helperAuth "schooladmin_backend/internals/helpers/auth"
	rateLimiter "schooladmin_backend/internals/middlewares"
	authMiddleware "schooladmin_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth. Login, refresh and logout are public; the rest
// needs a valid access token.
func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	ctl := controller.NewAuthController(db, cfg)

	g := app.Group("/api/auth")
	g.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	g.Post("/refresh", ctl.Refresh)
	g.Post("/logout", ctl.Logout)

	me := g.Group("", authMiddleware.AuthJWT(cfg.JWTSecret, log))
	me.Get("/me", ctl.Me)
	me.Post("/change-password", ctl.ChangePassword)
}

// UserAdminRoutes: account management is admin-only, accountants are rejected.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	g := admin.Group("/users", authMiddleware.OnlyRoles(helperAuth.RoleAdmin))
	g.Post("/", ctl.CreateUser)
	g.Get("/", ctl.ListUsers)
	g.Patch("/:id", ctl.UpdateUser)
}
