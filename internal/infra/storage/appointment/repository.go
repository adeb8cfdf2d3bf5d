package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/dbmetrics"
	"github.com/agendalivre/booking-service/pkg/psqlbuilder"
	"github.com/agendalivre/booking-service/pkg/types"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations; on the occupancy index it means a racing booking won.
const pgUniqueViolation = "23505"

// appointmentColumns is the canonical column list. The snake_case names
// are the storage-boundary representation; scanning maps them onto the
// camelCase domain fields without touching values.
var appointmentColumns = []string{
	"id",
	"client_name",
	"client_phone",
	"date",
	"time",
	"status",
	"created_at",
}

// Repository persists appointments.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment. The ID is generated here when absent.
// A unique-violation on the occupancy index maps to ErrSlotTaken, so a
// check-then-insert race still surfaces as a business rejection rather
// than an internal error.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	if appt.Status == "" {
		appt.Status = domain.StatusConfirmed
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"client_name",
			"client_phone",
			"date",
			"time",
			"status",
		).
		Values(
			appt.ID,
			appt.ClientName,
			appt.ClientPhone,
			appt.Date,
			appt.Time,
			appt.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	return appt, nil
}

// GetByID fetches an appointment regardless of status.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByDateTime returns the current non-cancelled occupant of the
// (date, time) slot, or ErrAppointmentNotFound when the slot is free.
// Inside a transaction the row is locked (FOR UPDATE) so concurrent
// bookers serialize on the occupancy check.
func (r *Repository) GetByDateTime(ctx context.Context, date types.DateString, t types.TimeString) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"date": date, "time": t}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateTime - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByDateTime")
}

// ListByDate returns every appointment on the date, any status, ordered
// by time ascending. Status filtering for presentation happens upstream.
func (r *Repository) ListByDate(ctx context.Context, date types.DateString) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"date": date}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListAll returns every appointment ordered by date then time ascending.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("date ASC, time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Update applies a partial update. Only fields set in the patch are
// written; unset fields keep their stored value. Moving the appointment
// onto an occupied slot surfaces as ErrSlotTaken via the occupancy index.
func (r *Repository) Update(ctx context.Context, id string, patch domain.AppointmentPatch) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	updateBuilder := psqlbuilder.Update("appointments").
		Where(squirrel.Eq{"id": id})

	if patch.ClientName != nil {
		updateBuilder = updateBuilder.Set("client_name", *patch.ClientName)
	}
	if patch.ClientPhone != nil {
		updateBuilder = updateBuilder.Set("client_phone", *patch.ClientPhone)
	}
	if patch.Date != nil {
		updateBuilder = updateBuilder.Set("date", *patch.Date)
	}
	if patch.Time != nil {
		updateBuilder = updateBuilder.Set("time", *patch.Time)
	}
	if patch.Status != nil {
		updateBuilder = updateBuilder.Set("status", *patch.Status)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(appointmentColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanOne(executor.QueryRowContext(ctx, query, args...), "Update")
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return appt, nil
}

// Cancel marks the appointment cancelled. Cancelling an already-cancelled
// appointment is a successful no-op; the record is never deleted.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// CountOccupiedByDateRange counts non-cancelled appointments with
// from <= date <= to. Used by the dashboard stats.
func (r *Repository) CountOccupiedByDateRange(ctx context.Context, from, to types.DateString) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountOccupiedByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOccupiedByDateRange - scan count: %w", ErrScanRow, err)
	}
	return count, nil
}

// scanOne scans a single appointment row.
func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.ClientPhone,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s - scan appointment: %w", ErrScanRow, op, err)
	}

	appt.CreatedAt = createdAt.Time
	return &appt, nil
}

// scanAppointments scans query results into a slice of appointments.
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.ClientName,
			&appt.ClientPhone,
			&appt.Date,
			&appt.Time,
			&appt.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}
	return appointments, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
