//go:build testutil
// +build testutil

package controller_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin_backend/internals/features/finance/salaries/controller"
	"schooladmin_backend/internals/testutil/testdb"
	"schooladmin_backend/internals/testutil/testhttp"
)

func TestSalary_CreateNetAndUniquePeriod(t *testing.T) {
	h, err := testdb.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(h.Close)

	app := testhttp.NewApp()
	ctl := controller.NewSalaryController(h.DB)
	app.Post("/salaries", ctl.Create)
	app.Post("/salaries/:id/pay", ctl.MarkPaid)

	emp := testdb.CreateEmployee(t, h.DB)
	body := fmt.Sprintf(`{"salary_employee_id":%q,"salary_month":3,"salary_year":2025,
		"salary_basic":"5000","salary_allowance":"500","salary_deduction":"1200"}`, emp.EmployeeID)

	status, out := testhttp.Send(t, app, fiber.MethodPost, "/salaries", body)
	require.Equal(t, fiber.StatusCreated, status, out)
	data := out["data"].(map[string]any)
	net, err := decimal.NewFromString(fmt.Sprint(data["salary_net"]))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(4300).Equal(net), "net %s", net)

	// same employee and period
	status, out = testhttp.Send(t, app, fiber.MethodPost, "/salaries", body)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", out["error_code"])

	// next month is a different period
	other := fmt.Sprintf(`{"salary_employee_id":%q,"salary_month":4,"salary_year":2025,"salary_basic":"5000"}`, emp.EmployeeID)
	status, _ = testhttp.Send(t, app, fiber.MethodPost, "/salaries", other)
	assert.Equal(t, fiber.StatusCreated, status)

	id := data["salary_id"].(string)
	status, _ = testhttp.Send(t, app, fiber.MethodPost, "/salaries/"+id+"/pay", "")
	assert.Equal(t, fiber.StatusOK, status)
	status, out = testhttp.Send(t, app, fiber.MethodPost, "/salaries/"+id+"/pay", "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "salary is already paid", out["message"])
}

func TestSalary_UnknownEmployeeIsBadRequest(t *testing.T) {
	h, err := testdb.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(h.Close)

	app := testhttp.NewApp()
	app.Post("/salaries", controller.NewSalaryController(h.DB).Create)

	body := `{"salary_employee_id":"7b0f2c7e-0000-4000-8000-000000000001","salary_month":1,"salary_year":2025,"salary_basic":"10"}`
	status, out := testhttp.Send(t, app, fiber.MethodPost, "/salaries", body)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", out["error_code"])
}
