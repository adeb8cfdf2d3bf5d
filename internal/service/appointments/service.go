package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/agendalivre/booking-service/internal/infra/storage/appointment"
	"github.com/agendalivre/booking-service/internal/service/appointments/models"
	"github.com/agendalivre/booking-service/pkg/types"
)

// Service serves the manager-facing appointment ledger: listings with the
// display-status projection, lookups and cancellation. No status filtering
// happens here — the presentation layer decides what to hide.
type Service struct {
	appointments AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the appointments service.
func NewService(appointments AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointments: appointments,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID fetches one appointment, any status.
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentView, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}
	return models.FromDomain(appt, s.timeProvider.Now()), nil
}

// ListByDate returns the date's appointments ordered by time ascending.
func (s *Service) ListByDate(ctx context.Context, date types.DateString) ([]*models.AppointmentView, error) {
	if err := date.Validate(); err != nil {
		s.logger.Warn("ListByDate: invalid date %q: %v", date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appts, err := s.appointments.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d appointments for date=%s", len(appts), date)
	return models.FromDomainList(appts, s.timeProvider.Now()), nil
}

// ListAll returns every appointment ordered by date then time ascending.
func (s *Service) ListAll(ctx context.Context) ([]*models.AppointmentView, error) {
	appts, err := s.appointments.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d appointments", len(appts))
	return models.FromDomainList(appts, s.timeProvider.Now()), nil
}

// Cancel marks the appointment cancelled, freeing its slot for rebooking.
// Cancelling an already-cancelled appointment succeeds without change;
// the record stays in the ledger for audit.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if err := s.appointments.Cancel(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%s cancelled", id)
	return nil
}
