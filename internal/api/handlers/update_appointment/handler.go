package update_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendalivre/booking-service/internal/api/handlers"
	rescheduleAppointment "github.com/agendalivre/booking-service/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgAppointmentNotFound = "appointment not found"
	msgSlotTaken           = "the slot is already taken"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/%s - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrInvalidInput),
			errors.Is(err, rescheduleAppointment.ErrEmptyPatch):
			h.logger.Warn("PUT /appointments/%s - validation failed: %v", id, err)
			handlers.RespondBadRequest(w, fmt.Sprintf("%v", err))

		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/%s - not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, rescheduleAppointment.ErrSlotTaken):
			h.logger.Warn("PUT /appointments/%s - slot taken", id)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PUT /appointments/%s - failed to update: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/%s - updated to %s %s", id, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
