package slot_blocks

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
	msgInvalidFields      = "invalid block fields"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid time, expected HH:MM"
	msgBlockNotFound      = "slot block not found"
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

// HandleCreate POST /api/slot-blocks
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slot-blocks - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	blk, err := h.service.AddBlock(r.Context(), req.ToDomain())
	if err != nil {
		var vErr *schedule.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /slot-blocks - validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidFields, vErr.Fields())

		default:
			h.logger.Error("POST /slot-blocks - failed to create: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slot-blocks - created block id=%s date=%s range=[%s,%s)",
		blk.ID, blk.SpecificDate, blk.StartTime, blk.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(blk))
}

// HandleList GET /api/slot-blocks
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.service.ListBlocks(r.Context())
	if err != nil {
		h.logger.Error("GET /slot-blocks - failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(blocks))
}

// HandleDelete DELETE /api/slot-blocks/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.RemoveBlock(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("DELETE /slot-blocks/%s - not found", id)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /slot-blocks/%s - failed to delete: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slot-blocks/%s - removed", id)
	w.WriteHeader(http.StatusNoContent)
}

// HandleCheck GET /api/slot-blocks/check/{date}/{time}
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, t := vars["date"], vars["time"]

	d := types.DateString(date)
	if err := d.Validate(); err != nil {
		h.logger.Warn("GET /slot-blocks/check/%s/%s - invalid date", date, t)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	tm := types.TimeString(t)
	if err := tm.Validate(); err != nil {
		h.logger.Warn("GET /slot-blocks/check/%s/%s - invalid time", date, t)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	blocked, err := h.service.IsTimeBlocked(r.Context(), d, tm)
	if err != nil {
		h.logger.Error("GET /slot-blocks/check/%s/%s - failed to check: %v", date, t, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckResponse{Date: date, Time: t, IsBlocked: blocked})
}
