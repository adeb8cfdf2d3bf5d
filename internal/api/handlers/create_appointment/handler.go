package create_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/agendalivre/booking-service/internal/api/handlers"
	bookAppointment "github.com/agendalivre/booking-service/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFields      = "invalid appointment fields"
	msgDateClosed         = "the business is closed on %s"
	msgSlotBlocked        = "the time %s on %s is blocked"
	msgSlotTaken          = "the slot %s %s is already taken"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var vErr *bookAppointment.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /appointments - validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidFields, vErr.Fields())

		case errors.Is(err, bookAppointment.ErrDateClosed):
			h.logger.Warn("POST /appointments - date closed: %s", req.Date)
			handlers.RespondConflict(w, fmt.Sprintf(msgDateClosed, req.Date))

		case errors.Is(err, bookAppointment.ErrSlotBlocked):
			h.logger.Warn("POST /appointments - slot blocked: %s %s", req.Date, req.Time)
			handlers.RespondConflict(w, fmt.Sprintf(msgSlotBlocked, req.Time, req.Date))

		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - slot taken: %s %s", req.Date, req.Time)
			handlers.RespondConflict(w, fmt.Sprintf(msgSlotTaken, req.Date, req.Time))

		default:
			h.logger.Error("POST /appointments - failed to book: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - booked id=%s for %s %s", result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
