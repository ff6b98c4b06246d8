package apperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/resource-hub/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   apperr.ErrorResponse
	}{
		{
			name:       "validation",
			err:        apperr.NewValidation("bad limit"),
			wantStatus: http.StatusBadRequest,
			wantBody:   apperr.ErrorResponse{Error: "bad limit", Title: "validation error"},
		},
		{
			name:       "not found",
			err:        apperr.NewNotFound("news", "n9", nil),
			wantStatus: http.StatusNotFound,
			wantBody:   apperr.ErrorResponse{Error: "news not found: n9"},
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   apperr.ErrorResponse{Error: "method not allowed"},
		},
		{
			name:       "unhandled",
			err:        errors.New("template exploded"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   apperr.ErrorResponse{Error: "Failed to fetch resources", Details: "template exploded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/combined-news", nil)
			rec := httptest.NewRecorder()

			apperr.GlobalErrorHandler()(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body apperr.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
