package auth_login

import (
	"context"

	"github.com/agendalivre/booking-service/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Manager, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
