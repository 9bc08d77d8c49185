package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"salon/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "start_time is required",
	}

	if f.Error() != "start_time is required" {
		t.Errorf("expected error message to be 'start_time is required', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("end before start")),
			code:    http.StatusBadRequest,
			message: "end before start",
		},
		{
			name:    "BadRequestf",
			err:     failure.BadRequestf("cannot %s appointment in status %s", "cancel", "in_progress"),
			code:    http.StatusBadRequest,
			message: "cannot cancel appointment in status in_progress",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("service not found"),
			code:    http.StatusNotFound,
			message: "service not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("slot taken"),
			code:    http.StatusConflict,
			message: "slot taken",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("Invalid token"),
			code:    http.StatusUnauthorized,
			message: "Invalid token",
		},
		{
			name:    "SlotUnavailableError",
			err:     failure.SlotUnavailableError,
			code:    http.StatusConflict,
			message: "the requested slot is no longer available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, code)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.err.Error())
			}
		})
	}

	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
}

func TestGetCode_WrappedAndPlain(t *testing.T) {
	wrapped := fmt.Errorf("failed to book appointment: %w", failure.Conflict("slot taken"))

	if code := failure.GetCode(wrapped); code != http.StatusConflict {
		t.Errorf("expected wrapped conflict to report 409, got %d", code)
	}

	if code := failure.GetCode(errors.New("connection refused")); code != http.StatusInternalServerError {
		t.Errorf("expected plain error to report 500, got %d", code)
	}
}

func TestClassifiers(t *testing.T) {
	conflict := fmt.Errorf("commit: %w", failure.Conflict("overlap"))

	if !failure.IsConflict(conflict) {
		t.Error("expected IsConflict to be true")
	}

	if failure.IsConflict(errors.New("db down")) {
		t.Error("expected plain error not to be a conflict")
	}

	if failure.IsConflict(nil) || failure.IsNotFound(nil) || failure.IsBadRequest(nil) {
		t.Error("expected nil to match no classifier")
	}

	if !failure.IsNotFound(failure.NotFound("appointment not found")) {
		t.Error("expected IsNotFound to be true")
	}

	if !failure.IsBadRequest(failure.BadRequestFromString("bad")) {
		t.Error("expected IsBadRequest to be true")
	}
}
