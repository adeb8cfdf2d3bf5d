package get_dashboard_stats

import (
	"net/http"

	"github.com/agendalivre/booking-service/internal/api/handlers"
	getDashboardStats "github.com/agendalivre/booking-service/internal/usecase/get_dashboard_stats"
)

type Handler struct {
	useCase GetDashboardStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// StatsResponse is the HTTP response model.
type StatsResponse struct {
	TodayCount    int `json:"todayCount"`
	WeekCount     int `json:"weekCount"`
	MonthCount    int `json:"monthCount"`
	OccupancyRate int `json:"occupancyRate"`
}

// Handle GET /api/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard/stats - failed to compute: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}

func fromUseCaseResponse(resp *getDashboardStats.Response) *StatsResponse {
	return &StatsResponse{
		TodayCount:    resp.TodayCount,
		WeekCount:     resp.WeekCount,
		MonthCount:    resp.MonthCount,
		OccupancyRate: resp.OccupancyRate,
	}
}
