package closure

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/dbmetrics"
	"github.com/agendalivre/booking-service/pkg/psqlbuilder"
)

var closureColumns = []string{
	"id",
	"closure_type",
	"day_of_week",
	"specific_date",
	"reason",
	"is_active",
}

// Repository persists closure rules.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the closure-rule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a closure rule. No uniqueness constraint: overlapping
// rules are permitted and have an idempotent effect on resolution.
func (r *Repository) Create(ctx context.Context, rule *domain.ClosureRule) (*domain.ClosureRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("closure_rules").
		Columns(closureColumns...).
		Values(
			rule.ID,
			rule.ClosureType,
			rule.DayOfWeek,
			rule.SpecificDate,
			rule.Reason,
			rule.IsActive,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return rule, nil
}

// Delete hard-removes a closure rule, effective immediately.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closure_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrClosureNotFound
	}
	return nil
}

// ListAll returns every closure rule, weekly rules first.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.ClosureRule, error) {
	return r.list(ctx, false)
}

// ListActive returns active rules only — the resolution input.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.ClosureRule, error) {
	return r.list(ctx, true)
}

func (r *Repository) list(ctx context.Context, activeOnly bool) ([]*domain.ClosureRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(closureColumns...).
		From("closure_rules").
		OrderBy("closure_type ASC, specific_date ASC NULLS FIRST, day_of_week ASC NULLS FIRST")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.ClosureRule, 0)
	for rows.Next() {
		var rule domain.ClosureRule
		err := rows.Scan(
			&rule.ID,
			&rule.ClosureType,
			&rule.DayOfWeek,
			&rule.SpecificDate,
			&rule.Reason,
			&rule.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %w", ErrScanRow, err)
		}
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %w", ErrScanRow, err)
	}
	return rules, nil
}
