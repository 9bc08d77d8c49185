package validator_test

import (
	"net/http"
	"salon/shared/failure"
	"salon/shared/validator"
	"strings"
	"testing"
)

type bookingInput struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
	Date      string `json:"date"       validate:"required,date"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	Source    string `json:"source"     validate:"omitempty,oneof=online phone walk_in staff"`
	Price     int    `json:"price"      validate:"gte=0"`
}

func validInput() bookingInput {
	return bookingInput{
		ServiceID: "0d1f7a2e-8a52-4f35-9d3b-2f1d6b6c4e11",
		Date:      "2025-09-01",
		StartTime: "09:00",
		Source:    "online",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(in *bookingInput)
		expectError string
	}{
		{
			name:   "valid input",
			mutate: func(_ *bookingInput) {},
		},
		{
			name:        "missing service",
			mutate:      func(in *bookingInput) { in.ServiceID = "" },
			expectError: "service_id is required",
		},
		{
			name:        "service is not a uuid",
			mutate:      func(in *bookingInput) { in.ServiceID = "haircut" },
			expectError: "service_id must be a valid UUID",
		},
		{
			name:        "date in wrong layout",
			mutate:      func(in *bookingInput) { in.Date = "01/09/2025" },
			expectError: "date must be a date in YYYY-MM-DD format",
		},
		{
			name:        "time without leading zero",
			mutate:      func(in *bookingInput) { in.StartTime = "9:00" },
			expectError: "start_time must be a time of day in HH:MM format",
		},
		{
			name:        "time past end of day",
			mutate:      func(in *bookingInput) { in.StartTime = "24:30" },
			expectError: "start_time must be a time of day in HH:MM format",
		},
		{
			name:        "unknown booking source",
			mutate:      func(in *bookingInput) { in.Source = "fax" },
			expectError: "source must be one of online phone walk_in staff",
		},
		{
			name:        "negative price",
			mutate:      func(in *bookingInput) { in.Price = -1 },
			expectError: "price must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := validator.ValidateStruct(&in)

			if tt.expectError == "" {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if err.Error() != tt.expectError {
				t.Errorf("expected %q, got %q", tt.expectError, err.Error())
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid time", field: "17:30", tag: "hhmm"},
		{name: "invalid time", field: "5pm", tag: "hhmm", expectError: true},
		{name: "valid date", field: "2025-09-02", tag: "date"},
		{name: "impossible date", field: "2025-02-30", tag: "date", expectError: true},
		{name: "step in range", field: 15, tag: "gte=5,lte=120"},
		{name: "step out of range", field: 1, tag: "gte=5,lte=120", expectError: true},
		{name: "empty tag on zero value", field: "", tag: "empty"},
		{name: "empty tag on set value", field: "x", tag: "empty", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"service_id":"0d1f7a2e-8a52-4f35-9d3b-2f1d6b6c4e11","date":"2025-09-01","start_time":"09:00"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"service_id":"0d1f7a2e-8a52-4f35-9d3b-2f1d6b6c4e11","date":"2025-09-01","start_time":"9am"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"service_id":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingInput
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
