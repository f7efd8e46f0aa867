// internal/handlers/respond_test.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorbridge/advisorbridge-backend/internal/services"
	"github.com/advisorbridge/advisorbridge-backend/internal/utils"
)

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)

	handleServiceError(c, err)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", services.NewValidationError("bad input"), http.StatusBadRequest, services.CodeValidation},
		{"authorization", services.NewAuthorizationError("not yours"), http.StatusForbidden, services.CodeAuthorization},
		{"not found", services.NewNotFoundError("missing"), http.StatusNotFound, services.CodeNotFound},
		{"duplicate", services.NewDuplicateError("already applied"), http.StatusBadRequest, services.CodeDuplicate},
		{"invalid state", services.NewInvalidStateError("not open"), http.StatusBadRequest, services.CodeInvalidState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, resp := recordError(t, tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestHandleServiceErrorHidesStorageDetails(t *testing.T) {
	cause := errors.New("pq: connection refused to db-host-internal")
	w, resp := recordError(t, services.NewStorageError(cause))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "db-host-internal")
}

func TestHandleServiceErrorUnknownErrorIsGeneric500(t *testing.T) {
	w, resp := recordError(t, errors.New("some internal detail"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "internal detail")
}
