package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	helper "schooladmin_backend/internals/helpers"
)

// Only paths rejected before the store is reached; a nil DB would panic otherwise.
func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler(zap.NewNop())})
	ctl := NewFeeController(nil)
	app.Post("/fees", ctl.CreateFee)
	app.Patch("/fees/:id", ctl.UpdateFee)
	app.Delete("/fees", ctl.DeleteFeesByIds)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestCreateFee_Validation(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"negative tuition", `{"fee_name":"G1","fee_type":"AnnualFee","fee_tuition_fee":-1}`, "fee_tuition_fee"},
		{"missing tuition", `{"fee_name":"G1","fee_type":"AnnualFee"}`, "fee_tuition_fee"},
		{"negative optional", `{"fee_name":"G1","fee_type":"AnnualFee","fee_tuition_fee":10,"fee_exam_fund":"-0.5"}`, "fee_exam_fund"},
		{"unknown type", `{"fee_name":"G1","fee_type":"Weekly","fee_tuition_fee":10}`, "fee_type"},
		{"blank name", `{"fee_name":"   ","fee_type":"MonthlyFee","fee_tuition_fee":10}`, "fee_name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := send(t, app, fiber.MethodPost, "/fees", tc.body)
			assert.Equal(t, fiber.StatusUnprocessableEntity, status)
			assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
			errs, _ := body["errors"].(map[string]any)
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestCreateFee_MalformedBody(t *testing.T) {
	status, body := send(t, newTestApp(), fiber.MethodPost, "/fees", `{"fee_name":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", body["error_code"])
}

func TestUpdateFee_BadID(t *testing.T) {
	status, _ := send(t, newTestApp(), fiber.MethodPatch, "/fees/nope", `{}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestDeleteFees_Validation(t *testing.T) {
	app := newTestApp()

	status, _ := send(t, app, fiber.MethodDelete, "/fees", `{}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, body := send(t, app, fiber.MethodDelete, "/fees", `{"fee_ids":"abc,def"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	errs, _ := body["errors"].(map[string]any)
	assert.Contains(t, errs, "fee_ids")
}
