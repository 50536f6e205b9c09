package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	helperAuth "schooladmin_backend/internals/helpers/auth"
)

const testSecret = "test-secret"

func mustToken(t *testing.T, secret, sub, role string, exp time.Time) string {
	t.Helper()
	claims := helperAuth.Claims{
		Name: "Tester",
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		AuthJWT(testSecret, zap.NewNop()),
		OnlyRoles(helperAuth.RoleAdmin, helperAuth.RoleAccountant),
		func(c *fiber.Ctx) error {
			a, err := helperAuth.MustActor(c)
			if err != nil {
				return err
			}
			return c.SendString(a.Role + ":" + a.UserID.String())
		},
	)
	return app
}

func do(t *testing.T, app *fiber.App, header, cookie string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	if cookie != "" {
		req.Header.Set(fiber.HeaderCookie, "access_token="+cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthJWT(t *testing.T) {
	app := protectedApp()
	uid := uuid.NewString()
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{"no token", "", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", "", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", "", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + mustToken(t, "other", uid, "admin", future), "", fiber.StatusUnauthorized},
		{"expired", "Bearer " + mustToken(t, testSecret, uid, "admin", time.Now().Add(-time.Minute)), "", fiber.StatusUnauthorized},
		{"bad subject", "Bearer " + mustToken(t, testSecret, "42", "admin", future), "", fiber.StatusUnauthorized},
		{"missing role", "Bearer " + mustToken(t, testSecret, uid, "", future), "", fiber.StatusUnauthorized},
		{"wrong role", "Bearer " + mustToken(t, testSecret, uid, "teacher", future), "", fiber.StatusForbidden},
		{"admin", "Bearer " + mustToken(t, testSecret, uid, "admin", future), "", fiber.StatusOK},
		{"accountant upper case", "Bearer " + mustToken(t, testSecret, uid, "ACCOUNTANT", future), "", fiber.StatusOK},
		{"cookie", "", mustToken(t, testSecret, uid, "admin", future), fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, do(t, app, tc.header, tc.cookie))
		})
	}
}

func TestAuthJWT_RejectsTokenWithoutExp(t *testing.T) {
	claims := helperAuth.Claims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, do(t, protectedApp(), "Bearer "+tok, ""))
}

func TestAuthJWT_ActorIsPerRequest(t *testing.T) {
	app := protectedApp()
	a, b := uuid.NewString(), uuid.NewString()
	future := time.Now().Add(time.Hour)

	for _, uid := range []string{a, b} {
		req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+mustToken(t, testSecret, uid, "admin", future))
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "admin:"+uid, string(body))
	}
}
