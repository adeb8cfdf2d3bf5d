package slot_blocks

import (
	"context"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

type ScheduleService interface {
	AddBlock(ctx context.Context, blk *domain.SlotBlock) (*domain.SlotBlock, error)
	RemoveBlock(ctx context.Context, id string) error
	ListBlocks(ctx context.Context) ([]*domain.SlotBlock, error)
	IsTimeBlocked(ctx context.Context, date types.DateString, t types.TimeString) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
