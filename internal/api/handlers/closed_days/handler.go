package closed_days

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendalivre/booking-service/internal/api/handlers"
	"github.com/agendalivre/booking-service/internal/service/schedule"
	"github.com/agendalivre/booking-service/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFields      = "invalid closure fields"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgClosureNotFound    = "closure rule not found"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/closed-days
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /closed-days - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.AddClosure(r.Context(), req.ToDomain())
	if err != nil {
		var vErr *schedule.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /closed-days - validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidFields, vErr.Fields())

		default:
			h.logger.Error("POST /closed-days - failed to create: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /closed-days - created rule id=%s type=%s", rule.ID, rule.ClosureType)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(rule))
}

// HandleList GET /api/closed-days
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.ListClosures(r.Context())
	if err != nil {
		h.logger.Error("GET /closed-days - failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(rules))
}

// HandleDelete DELETE /api/closed-days/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.RemoveClosure(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, schedule.ErrClosureNotFound):
			h.logger.Warn("DELETE /closed-days/%s - not found", id)
			handlers.RespondNotFound(w, msgClosureNotFound)

		default:
			h.logger.Error("DELETE /closed-days/%s - failed to delete: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /closed-days/%s - removed", id)
	w.WriteHeader(http.StatusNoContent)
}

// HandleCheck GET /api/closed-days/check/{date}
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	d := types.DateString(date)
	if err := d.Validate(); err != nil {
		h.logger.Warn("GET /closed-days/check/%s - invalid date", date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	closed, err := h.service.IsDateClosed(r.Context(), d)
	if err != nil {
		h.logger.Error("GET /closed-days/check/%s - failed to check: %v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckResponse{Date: date, IsClosed: closed})
}
