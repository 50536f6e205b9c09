//go:build testutil
// +build testutil

package controller_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "schooladmin_backend/internals/features/academics/classes/model"
	"schooladmin_backend/internals/features/students/controller"
	"schooladmin_backend/internals/features/students/model"
	"schooladmin_backend/internals/testutil/testdb"
	"schooladmin_backend/internals/testutil/testhttp"
)

func TestDeleteStudent_EnrolledIsConflict(t *testing.T) {
	h, err := testdb.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(h.Close)

	app := testhttp.NewApp()
	ctl := controller.NewStudentController(h.DB)
	app.Get("/students/:id", ctl.Get)
	app.Delete("/students/:id", ctl.Delete)

	st := testdb.CreateStudent(t, h.DB)
	link := testdb.Enroll(t, h.DB, st.StudentID, testdb.CreateClass(t, h.DB).ClassID, testdb.CreateSession(t, h.DB).SessionID)
	path := "/students/" + st.StudentID.String()

	status, out := testhttp.Send(t, app, fiber.MethodDelete, path, "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "student is still enrolled in a class", out["message"])

	var alive int64
	require.NoError(t, h.DB.Model(&model.StudentModel{}).Where("student_id = ?", st.StudentID).Count(&alive).Error)
	assert.EqualValues(t, 1, alive)

	require.NoError(t, h.DB.Delete(&classModel.StudentClassModel{}, "student_class_id = ?", link.StudentClassID).Error)

	status, _ = testhttp.Send(t, app, fiber.MethodDelete, path, "")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = testhttp.Send(t, app, fiber.MethodGet, path, "")
	assert.Equal(t, fiber.StatusNotFound, status)

	// soft delete keeps the row
	var all int64
	require.NoError(t, h.DB.Unscoped().Model(&model.StudentModel{}).Where("student_id = ?", st.StudentID).Count(&all).Error)
	assert.EqualValues(t, 1, all)
}

func TestDeleteStudent_Missing(t *testing.T) {
	h, err := testdb.Start(context.Background())
	require.NoError(t, err)
	t.Cleanup(h.Close)

	app := testhttp.NewApp()
	app.Delete("/students/:id", controller.NewStudentController(h.DB).Delete)

	status, out := testhttp.Send(t, app, fiber.MethodDelete, "/students/7b0f2c7e-0000-4000-8000-000000000001", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", out["error_code"])
}
