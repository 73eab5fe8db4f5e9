package pgerr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"kitchen/internal/adapters/out/postgres/pgerr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func pgError(code string) error {
	return fmt.Errorf("query: %w", &pgconn.PgError{Code: code, Message: "boom"})
}

func TestIsTransient(t *testing.T) {
	assert.True(t, pgerr.IsTransient(pgError(pgerr.DeadlockDetected)))
	assert.True(t, pgerr.IsTransient(pgError(pgerr.SerializationFailure)))
	assert.False(t, pgerr.IsTransient(pgError(pgerr.UniqueViolation)))
	assert.False(t, pgerr.IsTransient(errors.New("plain")))
	assert.False(t, pgerr.IsTransient(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, pgerr.IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, pgerr.IsUniqueViolation(pgError(pgerr.UniqueViolation)))
	assert.False(t, pgerr.IsUniqueViolation(pgError(pgerr.DeadlockDetected)))
}

func TestRetry(t *testing.T) {
	t.Run("should retry transient failures until success", func(t *testing.T) {
		calls := 0
		err := pgerr.Retry(t.Context(), pgerr.DefaultReadAttempts, func() error {
			calls++
			if calls < 3 {
				return pgError(pgerr.DeadlockDetected)
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("should give up after the last attempt", func(t *testing.T) {
		calls := 0
		err := pgerr.Retry(t.Context(), pgerr.DefaultReadAttempts, func() error {
			calls++
			return pgError(pgerr.SerializationFailure)
		})

		require.True(t, pgerr.IsTransient(err))
		assert.Equal(t, pgerr.DefaultReadAttempts, calls)
	})

	t.Run("should not retry other errors", func(t *testing.T) {
		calls := 0
		err := pgerr.Retry(t.Context(), pgerr.DefaultReadAttempts, func() error {
			calls++
			return gorm.ErrRecordNotFound
		})

		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		calls := 0
		err := pgerr.Retry(ctx, pgerr.DefaultReadAttempts, func() error {
			calls++
			return pgError(pgerr.DeadlockDetected)
		})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
