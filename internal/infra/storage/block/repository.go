package block

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/dbmetrics"
	"github.com/agendalivre/booking-service/pkg/psqlbuilder"
	"github.com/agendalivre/booking-service/pkg/types"
)

// pgUndefinedTable signals that the slot_blocks extension table was never
// provisioned. Reads treat that as "no blocks" so availability keeps
// working on installations without the feature; writes still fail loudly.
const pgUndefinedTable = "42P01"

var blockColumns = []string{
	"id",
	"specific_date",
	"start_time",
	"end_time",
	"reason",
	"is_active",
}

// Repository persists slot blocks.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the slot-block repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a slot block.
func (r *Repository) Create(ctx context.Context, blk *domain.SlotBlock) (*domain.SlotBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if blk.ID == "" {
		blk.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("slot_blocks").
		Columns(blockColumns...).
		Values(
			blk.ID,
			blk.SpecificDate,
			blk.StartTime,
			blk.EndTime,
			blk.Reason,
			blk.IsActive,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return blk, nil
}

// Delete hard-removes a slot block.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_blocks").
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
		return ErrBlockNotFound
	}
	return nil
}

// ListAll returns every slot block ordered by date then start time.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.SlotBlock, error) {
	selectBuilder := psqlbuilder.Select(blockColumns...).
		From("slot_blocks").
		OrderBy("specific_date ASC, start_time ASC")

	return r.query(ctx, selectBuilder, "ListAll")
}

// ListActiveForDate returns active blocks on the date ordered by start
// time — the resolution input for block checks.
func (r *Repository) ListActiveForDate(ctx context.Context, date types.DateString) ([]*domain.SlotBlock, error) {
	selectBuilder := psqlbuilder.Select(blockColumns...).
		From("slot_blocks").
		Where(squirrel.Eq{"specific_date": date, "is_active": true}).
		OrderBy("start_time ASC")

	return r.query(ctx, selectBuilder, "ListActiveForDate")
}

func (r *Repository) query(ctx context.Context, selectBuilder squirrel.SelectBuilder, op string) ([]*domain.SlotBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			// Documented degraded mode: unprovisioned extension table
			// reads as an empty block list.
			return []*domain.SlotBlock{}, nil
		}
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	blocks := make([]*domain.SlotBlock, 0)
	for rows.Next() {
		var blk domain.SlotBlock
		err := rows.Scan(
			&blk.ID,
			&blk.SpecificDate,
			&blk.StartTime,
			&blk.EndTime,
			&blk.Reason,
			&blk.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		blocks = append(blocks, &blk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}
	return blocks, nil
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUndefinedTable
}
