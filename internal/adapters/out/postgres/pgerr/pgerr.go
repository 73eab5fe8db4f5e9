// Package pgerr classifies PostgreSQL errors and retries idempotent reads
// that failed for transient reasons.
package pgerr

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes.
const (
	DeadlockDetected     = "40P01"
	SerializationFailure = "40001"
	UniqueViolation      = "23505"
)

// DefaultReadAttempts is how often a read outside a transaction is tried.
const DefaultReadAttempts = 3

const retryBackoff = 20 * time.Millisecond

// IsTransient reports whether err is a deadlock or serialization failure.
// Both leave no partial state behind, so an idempotent read may simply run again.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == DeadlockDetected || pgErr.Code == SerializationFailure
}

// IsUniqueViolation covers both the translated gorm error and the raw driver error.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// Retry runs fn up to attempts times while it fails with a transient error.
// Any other error, or a cancelled ctx, stops immediately.
func Retry(ctx context.Context, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil || !IsTransient(err) || attempt == attempts {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
