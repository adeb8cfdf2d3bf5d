package closed_days

import (
	"context"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

type ScheduleService interface {
	AddClosure(ctx context.Context, rule *domain.ClosureRule) (*domain.ClosureRule, error)
	RemoveClosure(ctx context.Context, id string) error
	ListClosures(ctx context.Context) ([]*domain.ClosureRule, error)
	IsDateClosed(ctx context.Context, date types.DateString) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
