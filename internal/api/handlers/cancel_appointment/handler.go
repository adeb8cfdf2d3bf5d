package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendalivre/booking-service/internal/api/handlers"
	"github.com/agendalivre/booking-service/internal/service/appointments"
)

const msgAppointmentNotFound = "appointment not found"

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

// Handle DELETE /api/appointments/{id}
//
// Cancellation is soft: the record stays in the ledger and its slot
// becomes bookable again. Re-cancelling is a no-op success.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Cancel(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/%s - not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("DELETE /appointments/%s - failed to cancel: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/%s - cancelled", id)
	w.WriteHeader(http.StatusNoContent)
}
