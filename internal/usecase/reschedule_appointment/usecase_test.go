package reschedule_appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/booking-service/internal/domain"
	appointmentRepo "github.com/agendalivre/booking-service/internal/infra/storage/appointment"
	"github.com/agendalivre/booking-service/pkg/ptr"
	"github.com/agendalivre/booking-service/pkg/types"
)

type fakeLedger struct {
	appts     map[string]*domain.Appointment
	getErr    error
	updateErr error
}

func newFakeLedger(appts ...*domain.Appointment) *fakeLedger {
	f := &fakeLedger{appts: make(map[string]*domain.Appointment)}
	for _, a := range appts {
		copied := *a
		f.appts[a.ID] = &copied
	}
	return f
}

func (f *fakeLedger) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	appt, ok := f.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeLedger) GetByDateTime(_ context.Context, date types.DateString, t types.TimeString) (*domain.Appointment, error) {
	for _, appt := range f.appts {
		if appt.Occupies() && appt.Date == date && appt.Time == t {
			return appt, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeLedger) Update(_ context.Context, id string, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	appt, ok := f.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	if patch.ClientName != nil {
		appt.ClientName = *patch.ClientName
	}
	if patch.ClientPhone != nil {
		appt.ClientPhone = *patch.ClientPhone
	}
	if patch.Date != nil {
		appt.Date = *patch.Date
	}
	if patch.Time != nil {
		appt.Time = *patch.Time
	}
	if patch.Status != nil {
		appt.Status = *patch.Status
	}
	return appt, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func existingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:          "a1",
		ClientName:  "Maria Silva",
		ClientPhone: "(11) 99999-8888",
		Date:        "2025-06-10",
		Time:        "09:00",
		Status:      domain.StatusConfirmed,
	}
}

func newTestUseCase(ledger *fakeLedger) *UseCase {
	return NewUseCase(ledger, fakeTxManager{}, noopLogger{})
}

func TestExecute_MoveToFreeSlotMarksRescheduled(t *testing.T) {
	ledger := newFakeLedger(existingAppointment())
	uc := newTestUseCase(ledger)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:   "a1",
		Time: ptr.Ptr(types.TimeString("10:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), resp.Time)
	assert.Equal(t, domain.StatusRescheduled, resp.Status)
}

func TestExecute_NameOnlyPatchKeepsStatus(t *testing.T) {
	ledger := newFakeLedger(existingAppointment())
	uc := newTestUseCase(ledger)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:         "a1",
		ClientName: ptr.Ptr("Maria Souza"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Souza", resp.ClientName)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, types.TimeString("09:00"), resp.Time)
}

func TestExecute_MoveToOccupiedSlotRejected(t *testing.T) {
	other := &domain.Appointment{
		ID: "a2", ClientName: "Joao Souza", ClientPhone: "(11) 98888-7777",
		Date: "2025-06-10", Time: "10:00", Status: domain.StatusConfirmed,
	}
	ledger := newFakeLedger(existingAppointment(), other)
	uc := newTestUseCase(ledger)

	_, err := uc.Execute(context.Background(), &Request{
		ID:   "a1",
		Time: ptr.Ptr(types.TimeString("10:00")),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_OwnSlotIsNotAConflict(t *testing.T) {
	// Re-submitting the same (date, time) must not collide with itself.
	ledger := newFakeLedger(existingAppointment())
	uc := newTestUseCase(ledger)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:   "a1",
		Date: ptr.Ptr(types.DateString("2025-06-10")),
		Time: ptr.Ptr(types.TimeString("09:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRescheduled, resp.Status)
}

func TestExecute_CancelledOccupantDoesNotConflict(t *testing.T) {
	cancelled := &domain.Appointment{
		ID: "a2", Date: "2025-06-10", Time: "10:00", Status: domain.StatusCancelled,
	}
	ledger := newFakeLedger(existingAppointment(), cancelled)
	uc := newTestUseCase(ledger)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:   "a1",
		Time: ptr.Ptr(types.TimeString("10:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.Time)
}

func TestExecute_ExplicitStatusWins(t *testing.T) {
	ledger := newFakeLedger(existingAppointment())
	uc := newTestUseCase(ledger)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:     "a1",
		Time:   ptr.Ptr(types.TimeString("10:00")),
		Status: ptr.Ptr(domain.StatusConfirmed),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
}

func TestExecute_NotFound(t *testing.T) {
	uc := newTestUseCase(newFakeLedger())

	_, err := uc.Execute(context.Background(), &Request{
		ID:   "missing",
		Time: ptr.Ptr(types.TimeString("10:00")),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_Validation(t *testing.T) {
	ledger := newFakeLedger(existingAppointment())
	uc := newTestUseCase(ledger)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"empty patch", &Request{ID: "a1"}, ErrEmptyPatch},
		{"missing id", &Request{Time: ptr.Ptr(types.TimeString("10:00"))}, ErrInvalidInput},
		{"short name", &Request{ID: "a1", ClientName: ptr.Ptr("M")}, ErrInvalidInput},
		{"unformatted phone", &Request{ID: "a1", ClientPhone: ptr.Ptr("11999998888")}, ErrInvalidInput},
		{"bad date", &Request{ID: "a1", Date: ptr.Ptr(types.DateString("10/06/2025"))}, ErrInvalidInput},
		{"bad time", &Request{ID: "a1", Time: ptr.Ptr(types.TimeString("9h"))}, ErrInvalidInput},
		{"cancel via patch", &Request{ID: "a1", Status: ptr.Ptr(domain.StatusCancelled)}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_StorageErrorsWrapped(t *testing.T) {
	boom := errors.New("db down")

	t.Run("load fails", func(t *testing.T) {
		ledger := newFakeLedger(existingAppointment())
		ledger.getErr = boom
		uc := newTestUseCase(ledger)

		_, err := uc.Execute(context.Background(), &Request{
			ID: "a1", ClientName: ptr.Ptr("Maria Souza"),
		})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("update fails", func(t *testing.T) {
		ledger := newFakeLedger(existingAppointment())
		ledger.updateErr = boom
		uc := newTestUseCase(ledger)

		_, err := uc.Execute(context.Background(), &Request{
			ID: "a1", ClientName: ptr.Ptr("Maria Souza"),
		})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
