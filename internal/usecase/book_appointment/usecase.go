package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agendalivre/booking-service/internal/domain"
	appointmentRepo "github.com/agendalivre/booking-service/internal/infra/storage/appointment"
)

// UseCase books an appointment. The availability checks and the insert
// run inside one serializable transaction, so two clients racing for the
// same (date, time) cannot both succeed: the second either sees the
// occupant row or trips the store's uniqueness guard, and both surface
// as ErrSlotTaken.
type UseCase struct {
	ledger    AppointmentLedger
	closures  ClosureChecker
	blocks    BlockChecker
	txManager TransactionManager
	logger    Logger
}

// NewUseCase creates the booking use case.
func NewUseCase(
	ledger AppointmentLedger,
	closures ClosureChecker,
	blocks BlockChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:    ledger,
		closures:  closures,
		blocks:    blocks,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute validates the request and books the slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: client=%q, date=%s, time=%s",
		req.ClientName, req.Date, req.Time)

	// 1. Field validation, reporting every violation at once.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Appointment

	// 2. Availability checks and insert under one serializable transaction.
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Closed days reject first.
		closed, err := uc.closures.IsDateClosed(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("BookAppointment: closure check failed for %s: %v", req.Date, err)
			return fmt.Errorf("%w: closure check: %w", ErrInternal, err)
		}
		if closed {
			uc.logger.Warn("BookAppointment: date %s is closed", req.Date)
			return ErrDateClosed
		}

		// 2.2. Block ranges reject next.
		blocked, err := uc.blocks.IsTimeBlocked(txCtx, req.Date, req.Time)
		if err != nil {
			uc.logger.Error("BookAppointment: block check failed for %s %s: %v", req.Date, req.Time, err)
			return fmt.Errorf("%w: block check: %w", ErrInternal, err)
		}
		if blocked {
			uc.logger.Warn("BookAppointment: time %s on %s is blocked", req.Time, req.Date)
			return ErrSlotBlocked
		}

		// 2.3. Occupancy check; inside the transaction this locks the
		// occupant row if one exists.
		occupant, err := uc.ledger.GetByDateTime(txCtx, req.Date, req.Time)
		if err != nil && !errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Error("BookAppointment: occupancy check failed for %s %s: %v", req.Date, req.Time, err)
			return fmt.Errorf("%w: occupancy check: %w", ErrInternal, err)
		}
		if occupant != nil {
			uc.logger.Warn("BookAppointment: slot %s %s already taken by id=%s",
				req.Date, req.Time, occupant.ID)
			return ErrSlotTaken
		}

		// 2.4. Insert. A racing committer that slipped past the check is
		// caught by the store's uniqueness guard.
		created, err = uc.ledger.Create(txCtx, &domain.Appointment{
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientPhone: req.ClientPhone,
			Date:        req.Date,
			Time:        req.Time,
			Status:      domain.StatusConfirmed,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("BookAppointment: slot %s %s taken at insert", req.Date, req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: insert failed: %v", err)
			return fmt.Errorf("%w: create appointment: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: created id=%s for %s %s", created.ID, created.Date, created.Time)
	return toResponse(created), nil
}
