package testutil

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	apperrors "fintrack/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code
// and an HTTP status to render it with.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	if appErr.StatusCode == 0 {
		t.Errorf("AppError %q has no HTTP status", appErr.Code)
	}
}

// AssertErrorResponse checks that rec holds the failure envelope
// {"success": false, "error": {"code", "message"}} with the given status and
// code. It returns the error message.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) string {
	t.Helper()

	if rec.Code != status {
		t.Errorf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success *bool `json:"success"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to parse error envelope: %v\nbody: %s", err, rec.Body.String())
	}
	if envelope.Success == nil || *envelope.Success {
		t.Errorf("expected success=false, got %s", rec.Body.String())
	}
	if envelope.Error == nil {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	if envelope.Error.Code != code {
		t.Errorf("expected error code %q, got %q", code, envelope.Error.Code)
	}
	return envelope.Error.Message
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
