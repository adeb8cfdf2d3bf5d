package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalivre/booking-service/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr error
	commits   int
	rollbacks int
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx     *fakeTx
	begins int
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return b.tx, nil
}

func serializationFailure() *pq.Error {
	return &pq.Error{Code: pq.ErrorCode(pgSerializationFailure)}
}

func TestDoSerializable_RetriesRawSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	manager := NewTransactionManager(beginner)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return serializationFailure()
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableAttempts, attempts)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pgSerializationFailure, string(pqErr.Code))
}

func TestDoSerializable_RetriesWrappedSerializationFailure(t *testing.T) {
	// Repositories wrap driver errors in their own sentinels before the
	// error reaches the retry loop; the serialization failure must stay
	// detectable through those wraps.
	errExecQuery := errors.New("appointment: failed to execute query")

	beginner := &fakeBeginner{tx: &fakeTx{}}
	manager := NewTransactionManager(beginner)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		repoErr := fmt.Errorf("%w: Create - execute insert: %w", errExecQuery, serializationFailure())
		return fmt.Errorf("internal error: create appointment: %w", repoErr)
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableAttempts, attempts)
	assert.ErrorIs(t, err, errExecQuery)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pgSerializationFailure, string(pqErr.Code))
}

func TestDoSerializable_SucceedsAfterTransientFailure(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	manager := NewTransactionManager(beginner)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return serializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, beginner.tx.commits)
	assert.Equal(t, 1, beginner.tx.rollbacks)
}

func TestDoSerializable_NonRetryableErrorPropagatesUnchanged(t *testing.T) {
	errBusiness := errors.New("slot already booked")

	beginner := &fakeBeginner{tx: &fakeTx{}}
	manager := NewTransactionManager(beginner)

	attempts := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return errBusiness
	})

	assert.Equal(t, 1, attempts)
	assert.Equal(t, errBusiness, err)
	assert.Equal(t, 1, beginner.tx.rollbacks)
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{commitErr: serializationFailure()}}
	manager := NewTransactionManager(beginner)

	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableAttempts, beginner.begins)
	assert.Equal(t, maxSerializableAttempts, beginner.tx.commits)
}
