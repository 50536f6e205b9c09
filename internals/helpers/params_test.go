package helper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUIDList(t *testing.T) {
	ids, err := ParseUUIDList("fee_ids",
		"6f1c2d4e-1111-4a5b-9c7d-000000000001, 6f1c2d4e-1111-4a5b-9c7d-000000000002;6f1c2d4e-1111-4a5b-9c7d-000000000001")
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = ParseUUIDList("fee_ids", " , ")
	assert.Equal(t, KindValidation, kind(err))

	_, err = ParseUUIDList("fee_ids", "abc")
	assert.Equal(t, KindValidation, kind(err))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var v struct {
		DOB *Date `json:"dob"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"dob":"2012-03-09"}`), &v))
	require.NotNil(t, v.DOB)
	assert.Equal(t, time.Date(2012, 3, 9, 0, 0, 0, 0, time.UTC), v.DOB.Time)

	require.NoError(t, json.Unmarshal([]byte(`{"dob":"2012-03-09T15:04:05+07:00"}`), &v))
	assert.Equal(t, "2012-03-09", v.DOB.Format(DateLayout))

	assert.Error(t, json.Unmarshal([]byte(`{"dob":"09/03/2012"}`), &v))

	out, err := json.Marshal(Date{Time: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2020-01-02"`, string(out))

	assert.Nil(t, DatatypesDate(nil))
	assert.Nil(t, FormatDate(nil))
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(51, Params{Page: 2, PerPage: 25})
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	m = BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"name": "student_first_name", "created_at": "student_created_at"}
	assert.Equal(t, "student_first_name ASC", Params{SortBy: "name", SortOrder: "asc"}.OrderClause(allowed, "created_at"))
	assert.Equal(t, "student_created_at DESC", Params{SortBy: "; drop table"}.OrderClause(allowed, "created_at"))
}
