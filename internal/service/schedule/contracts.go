package schedule

import (
	"context"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

// TimeSlotRepository is the catalog storage contract.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	Update(ctx context.Context, id string, patch domain.TimeSlotPatch) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*domain.TimeSlot, error)
	ListAll(ctx context.Context) ([]*domain.TimeSlot, error)
}

// ClosureRepository is the closure-rule storage contract.
type ClosureRepository interface {
	Create(ctx context.Context, rule *domain.ClosureRule) (*domain.ClosureRule, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*domain.ClosureRule, error)
	ListActive(ctx context.Context) ([]*domain.ClosureRule, error)
}

// BlockRepository is the slot-block storage contract.
type BlockRepository interface {
	Create(ctx context.Context, blk *domain.SlotBlock) (*domain.SlotBlock, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*domain.SlotBlock, error)
	ListActiveForDate(ctx context.Context, date types.DateString) ([]*domain.SlotBlock, error)
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
