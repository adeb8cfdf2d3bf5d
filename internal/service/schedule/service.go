package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendalivre/booking-service/internal/domain"
	blockRepo "github.com/agendalivre/booking-service/internal/infra/storage/block"
	closureRepo "github.com/agendalivre/booking-service/internal/infra/storage/closure"
	timeslotRepo "github.com/agendalivre/booking-service/internal/infra/storage/timeslot"
	"github.com/agendalivre/booking-service/pkg/types"
)

// Service owns the schedule configuration: the time-slot catalog, closure
// rules and slot blocks — and exposes the two predicates the availability
// resolver and the booking flow consult: IsDateClosed and IsTimeBlocked.
type Service struct {
	slots    TimeSlotRepository
	closures ClosureRepository
	blocks   BlockRepository
	logger   Logger
}

// NewService creates the schedule service.
func NewService(slots TimeSlotRepository, closures ClosureRepository, blocks BlockRepository, logger Logger) *Service {
	return &Service{
		slots:    slots,
		closures: closures,
		blocks:   blocks,
		logger:   logger,
	}
}

// ---- Time-slot catalog ----

// AddSlot creates a catalog slot with the given time, active by default.
func (s *Service) AddSlot(ctx context.Context, slotTime types.TimeString) (*domain.TimeSlot, error) {
	if err := slotTime.Validate(); err != nil {
		s.logger.Warn("AddSlot: invalid slot time %q: %v", slotTime, err)
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	slot, err := s.slots.Create(ctx, &domain.TimeSlot{SlotTime: slotTime, IsActive: true})
	if err != nil {
		if errors.Is(err, timeslotRepo.ErrDuplicateSlot) {
			s.logger.Warn("AddSlot: slot %s already exists", slotTime)
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("AddSlot: repository error for slot %s: %v", slotTime, err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("AddSlot: created slot id=%s time=%s", slot.ID, slot.SlotTime)
	return slot, nil
}

// UpdateSlot applies a rename and/or activity toggle. Toggling to the
// current value is a no-op success.
func (s *Service) UpdateSlot(ctx context.Context, id string, patch domain.TimeSlotPatch) (*domain.TimeSlot, error) {
	if patch.SlotTime != nil {
		if err := patch.SlotTime.Validate(); err != nil {
			s.logger.Warn("UpdateSlot: invalid slot time %q: %v", *patch.SlotTime, err)
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	slot, err := s.slots.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, timeslotRepo.ErrSlotNotFound):
			s.logger.Warn("UpdateSlot: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		case errors.Is(err, timeslotRepo.ErrDuplicateSlot):
			s.logger.Warn("UpdateSlot: rename collides with existing slot time")
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("UpdateSlot: repository error for slot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSlot - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("UpdateSlot: updated slot id=%s time=%s active=%t", slot.ID, slot.SlotTime, slot.IsActive)
	return slot, nil
}

// RemoveSlot hard-deletes a catalog slot. Existing appointments at that
// time are not affected.
func (s *Service) RemoveSlot(ctx context.Context, id string) error {
	if err := s.slots.Delete(ctx, id); err != nil {
		if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
			s.logger.Warn("RemoveSlot: slot id=%s not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("RemoveSlot: repository error for slot id=%s: %v", id, err)
		return fmt.Errorf("%w: RemoveSlot - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("RemoveSlot: deleted slot id=%s", id)
	return nil
}

// ListSlots returns the catalog ordered by slot time, optionally only the
// active entries.
func (s *Service) ListSlots(ctx context.Context, activeOnly bool) ([]*domain.TimeSlot, error) {
	var (
		slots []*domain.TimeSlot
		err   error
	)
	if activeOnly {
		slots, err = s.slots.ListActive(ctx)
	} else {
		slots, err = s.slots.ListAll(ctx)
	}
	if err != nil {
		s.logger.Error("ListSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %w", ErrInternal, err)
	}
	return slots, nil
}

// ---- Closure rules ----

// AddClosure creates a closure rule after enforcing the exactly-one-of
// dayOfWeek/specificDate invariant. Duplicate and overlapping rules are
// allowed; their effect on resolution is idempotent. Validation failures
// come back as a *ValidationError listing every violated field.
func (s *Service) AddClosure(ctx context.Context, rule *domain.ClosureRule) (*domain.ClosureRule, error) {
	if vErr := validateClosure(rule); vErr != nil {
		s.logger.Warn("AddClosure: validation failed: %v", vErr)
		return nil, vErr
	}

	created, err := s.closures.Create(ctx, rule)
	if err != nil {
		s.logger.Error("AddClosure: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddClosure - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("AddClosure: created rule id=%s type=%s", created.ID, created.ClosureType)
	return created, nil
}

// RemoveClosure hard-deletes a closure rule, effective immediately.
func (s *Service) RemoveClosure(ctx context.Context, id string) error {
	if err := s.closures.Delete(ctx, id); err != nil {
		if errors.Is(err, closureRepo.ErrClosureNotFound) {
			s.logger.Warn("RemoveClosure: rule id=%s not found", id)
			return ErrClosureNotFound
		}
		s.logger.Error("RemoveClosure: repository error for rule id=%s: %v", id, err)
		return fmt.Errorf("%w: RemoveClosure - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("RemoveClosure: deleted rule id=%s", id)
	return nil
}

// ListClosures returns every closure rule.
func (s *Service) ListClosures(ctx context.Context) ([]*domain.ClosureRule, error) {
	rules, err := s.closures.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListClosures: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClosures - repository error: %w", ErrInternal, err)
	}
	return rules, nil
}

// IsDateClosed reports whether any active rule closes the date. This is
// the single source of truth for "is the business open this day": the
// resolver and the booking flow both go through here.
func (s *Service) IsDateClosed(ctx context.Context, date types.DateString) (bool, error) {
	if err := date.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	rules, err := s.closures.ListActive(ctx)
	if err != nil {
		s.logger.Error("IsDateClosed: repository error: %v", err)
		return false, fmt.Errorf("%w: IsDateClosed - repository error: %w", ErrInternal, err)
	}

	for _, rule := range rules {
		matches, err := rule.Matches(date)
		if err != nil {
			return false, fmt.Errorf("%w: IsDateClosed - rule id=%s: %w", ErrInternal, rule.ID, err)
		}
		if matches {
			return true, nil
		}
	}
	return false, nil
}

// ---- Slot blocks ----

// AddBlock creates a time-range exclusion on one date. When EndTime is
// omitted the default block duration is applied to StartTime. Validation
// failures come back as a *ValidationError listing every violated field.
func (s *Service) AddBlock(ctx context.Context, blk *domain.SlotBlock) (*domain.SlotBlock, error) {
	if blk.EndTime.IsZero() && !blk.StartTime.IsZero() {
		if end, err := blk.StartTime.AddMinutes(domain.DefaultBlockDurationMinutes); err == nil {
			blk.EndTime = end
		}
	}

	if vErr := validateBlock(blk); vErr != nil {
		s.logger.Warn("AddBlock: validation failed: %v", vErr)
		return nil, vErr
	}

	created, err := s.blocks.Create(ctx, blk)
	if err != nil {
		s.logger.Error("AddBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddBlock - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("AddBlock: created block id=%s date=%s range=[%s,%s)",
		created.ID, created.SpecificDate, created.StartTime, created.EndTime)
	return created, nil
}

// RemoveBlock hard-deletes a slot block.
func (s *Service) RemoveBlock(ctx context.Context, id string) error {
	if err := s.blocks.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("RemoveBlock: block id=%s not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("RemoveBlock: repository error for block id=%s: %v", id, err)
		return fmt.Errorf("%w: RemoveBlock - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("RemoveBlock: deleted block id=%s", id)
	return nil
}

// ListBlocks returns every slot block.
func (s *Service) ListBlocks(ctx context.Context) ([]*domain.SlotBlock, error) {
	blocks, err := s.blocks.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %w", ErrInternal, err)
	}
	return blocks, nil
}

// ListBlocksForDate returns active blocks on the date ordered by start time.
func (s *Service) ListBlocksForDate(ctx context.Context, date types.DateString) ([]*domain.SlotBlock, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	blocks, err := s.blocks.ListActiveForDate(ctx, date)
	if err != nil {
		s.logger.Error("ListBlocksForDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocksForDate - repository error: %w", ErrInternal, err)
	}
	return blocks, nil
}

// IsTimeBlocked reports whether any active block on the date covers the
// time. Block ranges are half-open: [start, end).
func (s *Service) IsTimeBlocked(ctx context.Context, date types.DateString, t types.TimeString) (bool, error) {
	if err := date.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := t.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	blocks, err := s.blocks.ListActiveForDate(ctx, date)
	if err != nil {
		s.logger.Error("IsTimeBlocked: repository error: %v", err)
		return false, fmt.Errorf("%w: IsTimeBlocked - repository error: %w", ErrInternal, err)
	}

	for _, blk := range blocks {
		covers, err := blk.Covers(t)
		if err != nil {
			return false, fmt.Errorf("%w: IsTimeBlocked - block id=%s: %w", ErrInternal, blk.ID, err)
		}
		if covers {
			return true, nil
		}
	}
	return false, nil
}
