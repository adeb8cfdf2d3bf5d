package get_dashboard_stats

import (
	"context"

	getDashboardStats "github.com/agendalivre/booking-service/internal/usecase/get_dashboard_stats"
)

type GetDashboardStatsUseCase interface {
	Execute(ctx context.Context) (*getDashboardStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
