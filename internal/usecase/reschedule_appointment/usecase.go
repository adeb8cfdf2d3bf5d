package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendalivre/booking-service/internal/domain"
	appointmentRepo "github.com/agendalivre/booking-service/internal/infra/storage/appointment"
	"github.com/agendalivre/booking-service/pkg/ptr"
)

// UseCase applies a partial update to an appointment. When the update
// moves the appointment to another (date, time), the occupancy check and
// the write run inside one serializable transaction, the same guard the
// booking flow uses, with the appointment's own row excluded from the
// conflict check.
type UseCase struct {
	ledger    AppointmentLedger
	txManager TransactionManager
	logger    Logger
}

// NewUseCase creates the reschedule use case.
func NewUseCase(ledger AppointmentLedger, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		ledger:    ledger,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute validates and applies the patch.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%s", req.ID)

	// 1. Validate the set fields.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	patch := req.patch()
	var updated *domain.Appointment

	// 2. Conflict check and write under one serializable transaction.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.ledger.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: id=%s not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: load id=%s failed: %v", req.ID, err)
			return fmt.Errorf("%w: load appointment: %w", ErrInternal, err)
		}

		if patch.ChangesSlot() {
			// Resolve the target slot: patched value or the stored one.
			targetDate := existing.Date
			if patch.Date != nil {
				targetDate = *patch.Date
			}
			targetTime := existing.Time
			if patch.Time != nil {
				targetTime = *patch.Time
			}

			occupant, err := uc.ledger.GetByDateTime(txCtx, targetDate, targetTime)
			if err != nil && !errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Error("RescheduleAppointment: occupancy check failed for %s %s: %v",
					targetDate, targetTime, err)
				return fmt.Errorf("%w: occupancy check: %w", ErrInternal, err)
			}
			if occupant != nil && occupant.ID != req.ID {
				uc.logger.Warn("RescheduleAppointment: slot %s %s taken by id=%s",
					targetDate, targetTime, occupant.ID)
				return ErrSlotTaken
			}

			// Moving the slot marks the appointment rescheduled unless the
			// caller set the status explicitly.
			if patch.Status == nil {
				patch.Status = ptr.Ptr(domain.StatusRescheduled)
			}
		}

		updated, err = uc.ledger.Update(txCtx, req.ID, patch)
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			case errors.Is(err, appointmentRepo.ErrSlotTaken):
				uc.logger.Warn("RescheduleAppointment: slot conflict at write for id=%s", req.ID)
				return ErrSlotTaken
			default:
				uc.logger.Error("RescheduleAppointment: update id=%s failed: %v", req.ID, err)
				return fmt.Errorf("%w: update appointment: %w", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: id=%s now %s %s status=%s",
		updated.ID, updated.Date, updated.Time, updated.Status)
	return toResponse(updated), nil
}
