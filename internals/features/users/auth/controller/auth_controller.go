package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/features/users/auth/dto"
	"schooladmin_backend/internals/features/users/auth/service"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

const refreshCookie = "refresh_token"

type AuthController struct {
	DB     *gorm.DB
	svc    *service.AuthService
	secure bool
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{
		DB:     db,
		svc:    service.NewAuthService(db, cfg),
		secure: cfg.Env == "prod",
	}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	out, err := ac.svc.Login(c.UserContext(), req, clientInfo(c))
	if err != nil {
		return err
	}
	ac.setAuthCookies(c, out.Tokens)
	return helper.JsonOK(c, "login successful", out)
}

// POST /api/auth/refresh
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	pair, err := ac.svc.Refresh(c.UserContext(), presentedRefreshToken(c), clientInfo(c))
	if err != nil {
		return err
	}
	ac.setAuthCookies(c, *pair)
	return helper.JsonOK(c, "token refreshed", pair)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.svc.Logout(c.UserContext(), presentedRefreshToken(c)); err != nil {
		return err
	}
	ac.clearAuthCookies(c)
	return helper.JsonOK(c, "logged out", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	actor, err := helperAuth.MustActor(c)
	if err != nil {
		return err
	}
	user, err := ac.svc.Me(c.UserContext(), actor.UserID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(*user))
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	actor, err := helperAuth.MustActor(c)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordRequest
	if err := helper.BodyParse(c, &req); err != nil {
		return err
	}
	if err := ac.svc.ChangePassword(c.UserContext(), actor.UserID, req); err != nil {
		return err
	}
	ac.clearAuthCookies(c)
	return helper.JsonUpdated(c, "password changed, sign in again", nil)
}

/* ==========================
   helpers
========================== */

// Body wins over the cookie so non-browser clients can refresh explicitly.
func presentedRefreshToken(c *fiber.Ctx) string {
	var req dto.RefreshRequest
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&req)
	}
	if tok := strings.TrimSpace(req.RefreshToken); tok != "" {
		return tok
	}
	return strings.TrimSpace(c.Cookies(refreshCookie))
}

func clientInfo(c *fiber.Ctx) service.ClientInfo {
	return service.ClientInfo{UserAgent: c.Get(fiber.HeaderUserAgent), IP: c.IP()}
}

func (ac *AuthController) setAuthCookies(c *fiber.Ctx, pair dto.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    pair.AccessToken,
		HTTPOnly: true,
		Secure:   ac.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
		Expires:  pair.AccessExpiresAt,
	})
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookie,
		Value:    pair.RefreshToken,
		HTTPOnly: true,
		Secure:   ac.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/api/auth",
		Expires:  pair.RefreshExpiresAt,
	})
}

func (ac *AuthController) clearAuthCookies(c *fiber.Ctx) {
	past := time.Unix(0, 0)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Path: "/", Expires: past, HTTPOnly: true, Secure: ac.secure})
	c.Cookie(&fiber.Cookie{Name: refreshCookie, Value: "", Path: "/api/auth", Expires: past, HTTPOnly: true, Secure: ac.secure})
}
