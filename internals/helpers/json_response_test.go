package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func errorApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return FieldError("fee_tuition_fee", "must be at least 0")
	})
	app.Get("/not-found", func(c *fiber.Ctx) error { return NotFound("session %s not found", "x") })
	app.Get("/bad", func(c *fiber.Ctx) error { return BadRequest("check provided data", errors.New("fk")) })
	app.Get("/conflict", func(c *fiber.Ctx) error { return Conflict("fee is still referenced", nil) })
	app.Get("/internal", func(c *fiber.Ctx) error { return errors.New("dial tcp 10.0.0.1: refused") })
	app.Get("/unauthorized", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusUnauthorized, "unauthorized") })
	app.Get("/ok", func(c *fiber.Ctx) error { return JsonOK(c, "", fiber.Map{"id": 1}) })
	return app
}

func call(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandler_Envelope(t *testing.T) {
	app := errorApp()

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/validation", 422, "VALIDATION_ERROR"},
		{"/not-found", 404, "NOT_FOUND"},
		{"/bad", 400, "BAD_REQUEST"},
		{"/conflict", 409, "CONFLICT"},
		{"/internal", 500, "INTERNAL_ERROR"},
		{"/unauthorized", 401, "UNAUTHORIZED"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			status, body := call(t, app, tc.path)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.code, body["error_code"])
		})
	}
}

func TestErrorHandler_DetailsStayServerSide(t *testing.T) {
	_, body := call(t, errorApp(), "/internal")
	assert.NotContains(t, body["message"], "dial tcp")

	_, body = call(t, errorApp(), "/validation")
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "fee_tuition_fee")
}

func TestJsonOK_Envelope(t *testing.T) {
	status, body := call(t, errorApp(), "/ok")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"])
	assert.NotNil(t, body["data"])
}
