package manager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/dbmetrics"
	"github.com/agendalivre/booking-service/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository persists manager accounts.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the manager repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a manager account.
func (r *Repository) Create(ctx context.Context, m *domain.Manager) (*domain.Manager, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("managers").
		Columns("id", "username", "password_hash").
		Values(m.ID, m.Username, m.PasswordHash).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return m, nil
}

// GetByUsername fetches a manager account by username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Manager, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "password_hash").
		From("managers").
		Where(squirrel.Eq{"username": username}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.Manager
	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.Username, &m.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrManagerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan manager: %w", ErrScanRow, err)
	}
	return &m, nil
}
