package auth_login

import (
	"errors"
	"net/http"

	"github.com/agendalivre/booking-service/internal/api/handlers"
	"github.com/agendalivre/booking-service/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "username and password are required"
	msgInvalidCredentials = "invalid credentials"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// LoginRequest is the HTTP request model.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse identifies the authenticated manager. The id goes into
// the X-Manager-ID header on protected routes.
type LoginResponse struct {
	ManagerID string `json:"managerId"`
	Username  string `json:"username"`
}

// Handle POST /api/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	manager, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - missing credentials")
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - invalid credentials for username=%q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - failed to authenticate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - manager id=%s authenticated", manager.ID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		ManagerID: manager.ID,
		Username:  manager.Username,
	})
}
