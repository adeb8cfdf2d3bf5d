package get_available_slots

import (
	"context"
	"fmt"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

// UseCase resolves the bookable slots for one date by composing the
// catalog, closure rules, slot blocks and the appointment ledger. It
// re-reads current state on every call — no caching, so a booking made
// a moment ago is reflected immediately.
type UseCase struct {
	catalog      TimeSlotCatalog
	ledger       AppointmentLedger
	closures     ClosureChecker
	blocks       BlockProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability resolver.
func NewUseCase(
	catalog TimeSlotCatalog,
	ledger AppointmentLedger,
	closures ClosureChecker,
	blocks BlockProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		ledger:       ledger,
		closures:     closures,
		blocks:       blocks,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute resolves availability for the requested date.
//
// Order of checks: closures short-circuit first (a closed day computes
// nothing else), then the active catalog is filtered against booked times
// and block ranges. Dates in the past, and on the current date the slots
// already behind the clock, resolve as unavailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := req.Date.Validate(); err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	empty := &Response{Date: req.Date, Slots: []Slot{}}
	now := uc.timeProvider.Now()
	today := types.NewDateString(now)

	// 1. Past dates have no availability.
	if req.Date.IsBefore(today) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date)
		return empty, nil
	}

	// 2. Closed days short-circuit.
	closed, err := uc.closures.IsDateClosed(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: closure check failed for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: closure check: %w", ErrInternal, err)
	}
	if closed {
		uc.logger.Info("GetAvailableSlots: date %s is closed", req.Date)
		return empty, nil
	}

	// 3. Active catalog, already ordered by slot time.
	active, err := uc.catalog.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: catalog read failed: %v", err)
		return nil, fmt.Errorf("%w: list active slots: %w", ErrInternal, err)
	}

	// 4. Times held by non-cancelled appointments.
	appts, err := uc.ledger.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: ledger read failed for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: list appointments: %w", ErrInternal, err)
	}
	booked := bookedTimes(appts)

	// 5. Active blocks on the date.
	blocks, err := uc.blocks.ListBlocksForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: block read failed for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: list blocks: %w", ErrInternal, err)
	}

	slots, err := filterAvailable(active, booked, blocks, req.Date, today, types.NewTimeString(now))
	if err != nil {
		return nil, fmt.Errorf("%w: filter slots: %w", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d of %d active slots available on %s",
		len(slots), len(active), req.Date)
	return &Response{Date: req.Date, Slots: slots}, nil
}

// bookedTimes collects the times occupied by non-cancelled appointments.
// A cancelled appointment does not hold its slot.
func bookedTimes(appts []*domain.Appointment) map[types.TimeString]struct{} {
	booked := make(map[types.TimeString]struct{}, len(appts))
	for _, appt := range appts {
		if appt.Occupies() {
			booked[appt.Time] = struct{}{}
		}
	}
	return booked
}

// filterAvailable keeps the active slots that are not booked, not inside
// a block range, and not behind the clock on the current date. Input
// order (ascending slot time) is preserved.
func filterAvailable(
	active []*domain.TimeSlot,
	booked map[types.TimeString]struct{},
	blocks []*domain.SlotBlock,
	date, today types.DateString,
	currentTime types.TimeString,
) ([]Slot, error) {
	result := make([]Slot, 0, len(active))

	for _, slot := range active {
		if date == today && slot.SlotTime.IsBefore(currentTime) {
			continue
		}
		if _, taken := booked[slot.SlotTime]; taken {
			continue
		}

		blocked := false
		for _, blk := range blocks {
			covers, err := blk.Covers(slot.SlotTime)
			if err != nil {
				return nil, err
			}
			if covers {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		result = append(result, Slot{ID: slot.ID, SlotTime: slot.SlotTime})
	}

	return result, nil
}
