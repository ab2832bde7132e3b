package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sauravjha/registrar/internal/pkg/apperrors"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.ErrCourseTypeNotFound, http.StatusNotFound, "RES_001"},
		{apperrors.ErrRegistrationNotFound, http.StatusNotFound, "RES_001"},
		{apperrors.ErrOfferingPairExists, http.StatusConflict, "RES_002"},
		{apperrors.ErrDuplicateRegistration, http.StatusConflict, "RES_002"},
		{apperrors.ErrOfferingAtCapacity, http.StatusConflict, "RES_003"},
		{apperrors.ErrRegistrationCancelled, http.StatusConflict, "RES_003"},
		{apperrors.ErrNoPendingAction, http.StatusConflict, "RES_003"},
		{apperrors.ErrInvalidCapacity, http.StatusBadRequest, "VAL_001"},
		{apperrors.ErrUnknownView, http.StatusBadRequest, "VAL_001"},
		{errors.New("boom"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tc := range cases {
		w := respond(t, tc.err)
		if w.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.status)
		}
		var resp struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Error.Code != tc.code {
			t.Errorf("%v: code = %q, want %q", tc.err, resp.Error.Code, tc.code)
		}
	}
}

func TestHandleAPIErrorValidationDetails(t *testing.T) {
	w := respond(t, apperrors.NewValidationError("Course name is required", "Course name must be unique"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Error struct {
			Code    string   `json:"code"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "VAL_001" {
		t.Fatalf("code = %q", resp.Error.Code)
	}
	if len(resp.Error.Details) != 2 || resp.Error.Details[0] != "Course name is required" {
		t.Fatalf("details = %v", resp.Error.Details)
	}
}
