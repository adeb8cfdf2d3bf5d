package schedule

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/booking-service/internal/domain"
	blockRepo "github.com/agendalivre/booking-service/internal/infra/storage/block"
	closureRepo "github.com/agendalivre/booking-service/internal/infra/storage/closure"
	timeslotRepo "github.com/agendalivre/booking-service/internal/infra/storage/timeslot"
	"github.com/agendalivre/booking-service/pkg/ptr"
	"github.com/agendalivre/booking-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	slots  []*domain.TimeSlot
	nextID int
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	for _, s := range f.slots {
		if s.SlotTime == slot.SlotTime {
			return nil, timeslotRepo.ErrDuplicateSlot
		}
	}
	f.nextID++
	slot.ID = slotID(f.nextID)
	f.slots = append(f.slots, slot)
	return slot, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.TimeSlot, error) {
	for _, s := range f.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, timeslotRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) Update(_ context.Context, id string, patch domain.TimeSlotPatch) (*domain.TimeSlot, error) {
	for _, s := range f.slots {
		if s.ID != id {
			continue
		}
		if patch.SlotTime != nil {
			for _, other := range f.slots {
				if other.ID != id && other.SlotTime == *patch.SlotTime {
					return nil, timeslotRepo.ErrDuplicateSlot
				}
			}
			s.SlotTime = *patch.SlotTime
		}
		if patch.IsActive != nil {
			s.IsActive = *patch.IsActive
		}
		return s, nil
	}
	return nil, timeslotRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) Delete(_ context.Context, id string) error {
	for i, s := range f.slots {
		if s.ID == id {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return timeslotRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) ListActive(_ context.Context) ([]*domain.TimeSlot, error) {
	out := make([]*domain.TimeSlot, 0)
	for _, s := range f.slots {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) ListAll(_ context.Context) ([]*domain.TimeSlot, error) {
	return f.slots, nil
}

func slotID(n int) string {
	return string(rune('a' + n - 1))
}

type fakeClosureRepo struct {
	rules []*domain.ClosureRule
}

func (f *fakeClosureRepo) Create(_ context.Context, rule *domain.ClosureRule) (*domain.ClosureRule, error) {
	if rule.ID == "" {
		rule.ID = "rule"
	}
	f.rules = append(f.rules, rule)
	return rule, nil
}

func (f *fakeClosureRepo) Delete(_ context.Context, id string) error {
	for i, r := range f.rules {
		if r.ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return closureRepo.ErrClosureNotFound
}

func (f *fakeClosureRepo) ListAll(_ context.Context) ([]*domain.ClosureRule, error) {
	return f.rules, nil
}

func (f *fakeClosureRepo) ListActive(_ context.Context) ([]*domain.ClosureRule, error) {
	out := make([]*domain.ClosureRule, 0)
	for _, r := range f.rules {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeBlockRepo struct {
	blocks []*domain.SlotBlock
}

func (f *fakeBlockRepo) Create(_ context.Context, blk *domain.SlotBlock) (*domain.SlotBlock, error) {
	if blk.ID == "" {
		blk.ID = "block"
	}
	f.blocks = append(f.blocks, blk)
	return blk, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, id string) error {
	for i, b := range f.blocks {
		if b.ID == id {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return blockRepo.ErrBlockNotFound
}

func (f *fakeBlockRepo) ListAll(_ context.Context) ([]*domain.SlotBlock, error) {
	return f.blocks, nil
}

func (f *fakeBlockRepo) ListActiveForDate(_ context.Context, date types.DateString) ([]*domain.SlotBlock, error) {
	out := make([]*domain.SlotBlock, 0)
	for _, b := range f.blocks {
		if b.IsActive && b.SpecificDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestService() (*Service, *fakeSlotRepo, *fakeClosureRepo, *fakeBlockRepo) {
	slots := &fakeSlotRepo{}
	closures := &fakeClosureRepo{}
	blocks := &fakeBlockRepo{}
	return NewService(slots, closures, blocks, noopLogger{}), slots, closures, blocks
}

func TestAddSlotAndDuplicate(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	slot, err := svc.AddSlot(ctx, "09:00")
	require.NoError(t, err)
	assert.True(t, slot.IsActive)
	assert.Equal(t, types.TimeString("09:00"), slot.SlotTime)

	_, err = svc.AddSlot(ctx, "09:00")
	assert.ErrorIs(t, err, ErrDuplicateSlot)

	_, err = svc.AddSlot(ctx, "9am")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddSlotRoundTrip(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.AddSlot(ctx, "14:30")
	require.NoError(t, err)

	all, err := svc.ListSlots(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.SlotTime, all[0].SlotTime)
	assert.Equal(t, created.IsActive, all[0].IsActive)

	active, err := svc.ListSlots(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, created.SlotTime, active[0].SlotTime)
}

func TestUpdateSlotToggleIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	slot, err := svc.AddSlot(ctx, "09:00")
	require.NoError(t, err)

	updated, err := svc.UpdateSlot(ctx, slot.ID, domain.TimeSlotPatch{IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// Same value again is a no-op success.
	updated, err = svc.UpdateSlot(ctx, slot.ID, domain.TimeSlotPatch{IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.UpdateSlot(ctx, "missing", domain.TimeSlotPatch{IsActive: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRemoveSlot(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	slot, err := svc.AddSlot(ctx, "09:00")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveSlot(ctx, slot.ID))
	assert.ErrorIs(t, svc.RemoveSlot(ctx, slot.ID), ErrSlotNotFound)
}

func TestAddClosureValidation(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddClosure(ctx, &domain.ClosureRule{
		ClosureType: domain.ClosureWeekly,
		IsActive:    true,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddClosure(ctx, &domain.ClosureRule{
		ClosureType:  domain.ClosureWeekly,
		DayOfWeek:    ptr.Ptr(domain.Tuesday),
		SpecificDate: ptr.Ptr(types.DateString("2025-06-10")),
		IsActive:     true,
	})
	assert.ErrorIs(t, err, ErrValidation)

	rule, err := svc.AddClosure(ctx, &domain.ClosureRule{
		ClosureType: domain.ClosureWeekly,
		DayOfWeek:   ptr.Ptr(domain.Tuesday),
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rule.ID)
}

func TestAddClosureEnumeratesAllViolations(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	longReason := strings.Repeat("x", domain.MaxReasonLength+1)

	_, err := svc.AddClosure(ctx, &domain.ClosureRule{
		ClosureType: domain.ClosureType("monthly"),
		Reason:      ptr.Ptr(longReason),
		IsActive:    true,
	})
	require.ErrorIs(t, err, ErrValidation)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"closureType", "reason"}, vErr.Fields())

	// Both halves of the exactly-one-of invariant are reported.
	_, err = svc.AddClosure(ctx, &domain.ClosureRule{
		ClosureType:  domain.ClosureWeekly,
		DayOfWeek:    ptr.Ptr(domain.Weekday("someday")),
		SpecificDate: ptr.Ptr(types.DateString("2025-06-10")),
		IsActive:     true,
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"dayOfWeek", "specificDate"}, vErr.Fields())
}

func TestIsDateClosed(t *testing.T) {
	svc, _, closures, _ := newTestService()
	ctx := context.Background()

	// 2025-06-10 is a Tuesday.
	closed, err := svc.IsDateClosed(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.False(t, closed)

	closures.rules = append(closures.rules, &domain.ClosureRule{
		ID:          "w1",
		ClosureType: domain.ClosureWeekly,
		DayOfWeek:   ptr.Ptr(domain.Tuesday),
		IsActive:    true,
	})

	closed, err = svc.IsDateClosed(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = svc.IsDateClosed(ctx, "2025-06-11")
	require.NoError(t, err)
	assert.False(t, closed)

	closures.rules = append(closures.rules, &domain.ClosureRule{
		ID:           "d1",
		ClosureType:  domain.ClosureSpecificDate,
		SpecificDate: ptr.Ptr(types.DateString("2025-06-11")),
		IsActive:     true,
	})

	closed, err = svc.IsDateClosed(ctx, "2025-06-11")
	require.NoError(t, err)
	assert.True(t, closed)
}

func TestAddBlockDefaultsAndValidation(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	// End time derived from the default block duration.
	blk, err := svc.AddBlock(ctx, &domain.SlotBlock{
		SpecificDate: "2025-06-10",
		StartTime:    "10:00",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), blk.EndTime)

	_, err = svc.AddBlock(ctx, &domain.SlotBlock{
		SpecificDate: "2025-06-10",
		StartTime:    "11:00",
		EndTime:      "10:00",
		IsActive:     true,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddBlockEnumeratesAllViolations(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	longReason := strings.Repeat("x", domain.MaxReasonLength+1)

	_, err := svc.AddBlock(ctx, &domain.SlotBlock{
		SpecificDate: "June 10th",
		StartTime:    "10am",
		EndTime:      "eleven",
		Reason:       ptr.Ptr(longReason),
		IsActive:     true,
	})
	require.ErrorIs(t, err, ErrValidation)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"specificDate", "startTime", "endTime", "reason"}, vErr.Fields())

	// The range check is reported alongside other violations.
	_, err = svc.AddBlock(ctx, &domain.SlotBlock{
		SpecificDate: "June 10th",
		StartTime:    "11:00",
		EndTime:      "10:00",
		IsActive:     true,
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"specificDate", "endTime"}, vErr.Fields())
}

func TestIsTimeBlockedHalfOpen(t *testing.T) {
	svc, _, _, blocks := newTestService()
	ctx := context.Background()

	blocks.blocks = append(blocks.blocks, &domain.SlotBlock{
		ID:           "b1",
		SpecificDate: "2025-06-10",
		StartTime:    "10:00",
		EndTime:      "10:30",
		IsActive:     true,
	})

	blocked, err := svc.IsTimeBlocked(ctx, "2025-06-10", "10:00")
	require.NoError(t, err)
	assert.True(t, blocked, "block start is excluded")

	blocked, err = svc.IsTimeBlocked(ctx, "2025-06-10", "10:30")
	require.NoError(t, err)
	assert.False(t, blocked, "block end is not excluded")

	blocked, err = svc.IsTimeBlocked(ctx, "2025-06-11", "10:00")
	require.NoError(t, err)
	assert.False(t, blocked, "other dates unaffected")
}
