package auth

import (
	"context"

	"github.com/agendalivre/booking-service/internal/domain"
)

// ManagerRepository is the manager-account storage contract.
type ManagerRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Manager, error)
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
