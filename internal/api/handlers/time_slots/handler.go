package time_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendalivre/booking-service/internal/api/handlers"
	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/internal/service/schedule"
	"github.com/agendalivre/booking-service/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlotTime    = "invalid slot time, expected HH:MM"
	msgDuplicateSlot      = "a slot with that time already exists"
	msgSlotNotFound       = "time slot not found"
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

// HandleList GET /api/time-slots?active=true
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	slots, err := h.service.ListSlots(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /time-slots - failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(slots))
}

// HandleCreate POST /api/time-slots
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-slots - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.AddSlot(r.Context(), types.TimeString(req.SlotTime))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrValidation):
			h.logger.Warn("POST /time-slots - invalid slot time %q", req.SlotTime)
			handlers.RespondBadRequest(w, msgInvalidSlotTime)

		case errors.Is(err, schedule.ErrDuplicateSlot):
			h.logger.Warn("POST /time-slots - duplicate slot time %q", req.SlotTime)
			handlers.RespondConflict(w, msgDuplicateSlot)

		default:
			h.logger.Error("POST /time-slots - failed to create: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-slots - created id=%s time=%s", slot.ID, slot.SlotTime)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(slot))
}

// HandleUpdate PUT /api/time-slots/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /time-slots/%s - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch := domain.TimeSlotPatch{IsActive: req.IsActive}
	if req.SlotTime != nil {
		t := types.TimeString(*req.SlotTime)
		patch.SlotTime = &t
	}

	slot, err := h.service.UpdateSlot(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrValidation):
			h.logger.Warn("PUT /time-slots/%s - validation failed: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidSlotTime)

		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("PUT /time-slots/%s - not found", id)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, schedule.ErrDuplicateSlot):
			h.logger.Warn("PUT /time-slots/%s - duplicate slot time", id)
			handlers.RespondConflict(w, msgDuplicateSlot)

		default:
			h.logger.Error("PUT /time-slots/%s - failed to update: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /time-slots/%s - updated time=%s active=%t", id, slot.SlotTime, slot.IsActive)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(slot))
}

// HandleDelete DELETE /api/time-slots/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.RemoveSlot(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("DELETE /time-slots/%s - not found", id)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("DELETE /time-slots/%s - failed to delete: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /time-slots/%s - removed", id)
	w.WriteHeader(http.StatusNoContent)
}
