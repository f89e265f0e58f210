package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/models/dtos"
	"igreja-digital/secretaria/internal/services"
)

func TestRespondServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
		message  string
	}{
		{"not found", repositories.ErrNotFound, http.StatusNotFound, constants.MsgNotFound},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, constants.MsgInvalidCredentials},
		{"loan linked expense", services.ErrLoanLinkedExpense, http.StatusForbidden, constants.MsgLoanLinkedExpense},
		{"unsupported format", services.ErrUnsupportedFormat, http.StatusBadRequest, constants.MsgExportUnsupported},
		{"pdf stub", services.ErrPdfStub, http.StatusNotImplemented, constants.MsgPdfExportStub},
		{"validation", &services.ValidationError{Fields: map[string]string{"fullName": "campo obrigatório"}}, http.StatusBadRequest, ""},
		{"unknown error stays generic", errors.New("pq: connection reset"), http.StatusInternalServerError, constants.MsgInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondServiceError(rec, time.Now(), tc.err)

			if rec.Code != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, rec.Code)
			}

			var env dtos.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("Invalid envelope: %v", err)
			}
			if env.Status != string(constants.APIStatusError) {
				t.Errorf("Expected error status, got %s", env.Status)
			}
			if tc.message != "" && env.Message != tc.message {
				t.Errorf("Expected message %q, got %q", tc.message, env.Message)
			}
			// storage details never leak to the client
			if tc.name == "unknown error stays generic" && env.Message != constants.MsgInternalError {
				t.Errorf("Internal detail leaked: %q", env.Message)
			}
		})
	}
}

func TestDecodeBodyRejectsMalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/members", nil)
	rec := httptest.NewRecorder()

	var dst dtos.MemberRequest
	if decodeBody(rec, r, time.Now(), &dst) {
		t.Fatal("Expected decodeBody to fail on empty body")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}
