package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/symptomdesk/internal/api/response"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.JSON(rec, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["data"]["status"])
}

func TestCollection(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Collection(rec, []string{"a", "b"}, response.PaginationMeta{
		Page:    1,
		Limit:   20,
		Total:   2,
		HasNext: false,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []string                `json:"data"`
		Meta response.PaginationMeta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"a", "b"}, body.Data)
	assert.Equal(t, 2, body.Meta.Total)
	assert.False(t, body.Meta.HasNext)
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, http.StatusBadRequest, "INVALID_REQUEST", "symptoms must not be empty", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
	assert.Equal(t, "symptoms must not be empty", body.Error.Message)
	assert.NotContains(t, rec.Body.String(), "details")
}

func TestError_WithDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, http.StatusServiceUnavailable, "DEGRADED", "One or more services degraded",
		map[string]string{"database": "degraded"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"degraded"`)
}
