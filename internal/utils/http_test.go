package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	err := SuccessResponse(c, http.StatusCreated, "Region monitoring started", map[string]string{"identifier": "home"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Region monitoring started", body["message"])
	assert.Equal(t, map[string]interface{}{"identifier": "home"}, body["data"])
}

func TestSuccessResponse_OmitsEmptyFields(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, SuccessResponse(c, http.StatusOK, "", nil))
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		respond  func(echo.Context, string) error
		message  string
		status   int
		expected string
	}{
		{"bad request", BadRequestResponse, "invalid request body", http.StatusBadRequest, "invalid request body"},
		{"forbidden", ForbiddenResponse, "", http.StatusForbidden, "Forbidden"},
		{"not found", NotFoundResponse, "region is not monitored", http.StatusNotFound, "region is not monitored"},
		{"internal", InternalServerErrorResponse, "", http.StatusInternalServerError, "Internal Server Error"},
		{"unavailable", ServiceUnavailableResponse, "", http.StatusServiceUnavailable, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, tt.respond(c, tt.message))

			assert.Equal(t, tt.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.expected, body.Error)
			assert.Equal(t, tt.status, body.Code)
		})
	}
}
