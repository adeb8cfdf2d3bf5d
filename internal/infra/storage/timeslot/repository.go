package timeslot

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

// Repository persists the time-slot catalog.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the time-slot repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new catalog slot, active by default. The unique index
// on slot_time maps violations to ErrDuplicateSlot.
func (r *Repository) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns("id", "slot_time", "is_active").
		Values(slot.ID, slot.SlotTime, slot.IsActive).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return slot, nil
}

// GetByID fetches one catalog slot.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slot_time", "is_active").
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.SlotTime, &slot.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %w", ErrScanRow, err)
	}
	return &slot, nil
}

// Update applies a partial update: rename, activity toggle, or both.
// Renaming onto an existing slot_time maps to ErrDuplicateSlot.
func (r *Repository) Update(ctx context.Context, id string, patch domain.TimeSlotPatch) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	updateBuilder := psqlbuilder.Update("time_slots").
		Where(squirrel.Eq{"id": id})

	if patch.SlotTime != nil {
		updateBuilder = updateBuilder.Set("slot_time", *patch.SlotTime)
	}
	if patch.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *patch.IsActive)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, slot_time, is_active").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.SlotTime, &slot.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Update - scan slot: %w", ErrScanRow, err)
	}
	return &slot, nil
}

// Delete hard-removes a catalog slot. Existing appointments at that time
// are untouched.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
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
		return ErrSlotNotFound
	}
	return nil
}

// ListActive returns active slots ordered by slot_time ascending.
// Zero-padded HH:MM makes the lexicographic order chronological.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.TimeSlot, error) {
	return r.list(ctx, true)
}

// ListAll returns every slot ordered by slot_time ascending.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.TimeSlot, error) {
	return r.list(ctx, false)
}

// CountActive returns the number of active catalog slots.
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("time_slots").
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %w", ErrScanRow, err)
	}
	return count, nil
}

func (r *Repository) list(ctx context.Context, activeOnly bool) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "slot_time", "is_active").
		From("time_slots").
		OrderBy("slot_time ASC")

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

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.SlotTime, &slot.IsActive); err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %w", ErrScanRow, err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %w", ErrScanRow, err)
	}
	return slots, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
