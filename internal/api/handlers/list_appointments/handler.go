package list_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendalivre/booking-service/internal/api/handlers"
	"github.com/agendalivre/booking-service/internal/service/appointments"
	"github.com/agendalivre/booking-service/pkg/types"
)

const msgInvalidDate = "invalid date, expected YYYY-MM-DD"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleListAll GET /api/appointments
func (h *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments - failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromViewList(views))
}

// HandleListByDate GET /api/appointments/{date}
func (h *Handler) HandleListByDate(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	views, err := h.service.ListByDate(r.Context(), types.DateString(date))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/%s - invalid date", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /appointments/%s - failed to list: %v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromViewList(views))
}
