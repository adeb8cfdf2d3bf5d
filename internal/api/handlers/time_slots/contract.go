package time_slots

import (
	"context"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

type ScheduleService interface {
	AddSlot(ctx context.Context, slotTime types.TimeString) (*domain.TimeSlot, error)
	UpdateSlot(ctx context.Context, id string, patch domain.TimeSlotPatch) (*domain.TimeSlot, error)
	RemoveSlot(ctx context.Context, id string) error
	ListSlots(ctx context.Context, activeOnly bool) ([]*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
