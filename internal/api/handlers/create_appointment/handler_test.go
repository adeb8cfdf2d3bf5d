package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/booking-service/internal/api/handlers"
	"github.com/agendalivre/booking-service/internal/domain"
	bookAppointment "github.com/agendalivre/booking-service/internal/usecase/book_appointment"
)

type fakeUseCase struct {
	resp *bookAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *bookAppointment.Request) (*bookAppointment.Response, error) {
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{"clientName":"Maria Silva","clientPhone":"(11) 99999-8888","date":"2025-06-10","time":"09:00"}`

func doRequest(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &bookAppointment.Response{
		ID:          "a1",
		ClientName:  "Maria Silva",
		ClientPhone: "(11) 99999-8888",
		Date:        "2025-06-10",
		Time:        "09:00",
		Status:      domain.StatusConfirmed,
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a1", resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2025-06-10", resp.Date)
}

func TestHandle_ValidationListsFields(t *testing.T) {
	uc := &fakeUseCase{err: &bookAppointment.ValidationError{Violations: []bookAppointment.FieldViolation{
		{Field: "clientName", Message: "must be at least 2 characters"},
		{Field: "clientPhone", Message: "must match the format (XX) XXXXX-XXXX"},
	}}}

	rec := doRequest(uc, validBody)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"clientName", "clientPhone"}, resp.Fields)
}

func TestHandle_ConflictMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"slot taken", bookAppointment.ErrSlotTaken, "2025-06-10 09:00"},
		{"slot blocked", bookAppointment.ErrSlotBlocked, "09:00 on 2025-06-10"},
		{"date closed", bookAppointment.ErrDateClosed, "2025-06-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&fakeUseCase{err: tt.err}, validBody)
			require.Equal(t, http.StatusConflict, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.wantMsg)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	rec := doRequest(&fakeUseCase{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(&fakeUseCase{err: bookAppointment.ErrInternal}, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
