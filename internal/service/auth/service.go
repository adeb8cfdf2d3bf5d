package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/agendalivre/booking-service/internal/domain"
	managerRepo "github.com/agendalivre/booking-service/internal/infra/storage/manager"
)

// Service authenticates manager accounts against bcrypt password hashes.
type Service struct {
	managers ManagerRepository
	logger   Logger
}

// NewService creates the auth service.
func NewService(managers ManagerRepository, logger Logger) *Service {
	return &Service{managers: managers, logger: logger}
}

// Login verifies the credentials and returns the manager account.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Manager, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	m, err := s.managers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, managerRepo.ErrManagerNotFound) {
			s.logger.Warn("Login: unknown username %q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username %q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %w", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for username %q", username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: manager id=%s authenticated", m.ID)
	return m, nil
}

// HashPassword produces the bcrypt hash stored on manager accounts.
// Used by cmd/seed when provisioning the initial manager.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}
