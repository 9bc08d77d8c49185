package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]string{"id": "appt-1"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, map[string]any{"data": map[string]any{"id": "appt-1"}}, decode(t, recorder))
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "slot taken", err: failure.SlotUnavailableError, code: http.StatusConflict, message: failure.SlotUnavailableError.Message},
		{name: "not found", err: failure.NotFound("appointment not found"), code: http.StatusNotFound, message: "appointment not found"},
		{name: "wrapped failure", err: errors.Join(errors.New("context"), failure.BadRequestFromString("bad date")), code: http.StatusBadRequest},
		{name: "infrastructure error is hidden", err: errors.New("pq: relation \"appointments\" does not exist"), code: http.StatusInternalServerError, message: constant.ResponseErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.code, recorder.Code)

			if tt.message != "" {
				assert.Equal(t, tt.message, decode(t, recorder)["error"])
			}
		})
	}
}

func TestWithMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithPreparingShutdown(recorder)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, constant.ResponseErrorPrepareShutdown, decode(t, recorder)["message"])
}
