package database

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/taalentio/talent-api/internal/shared/logger"
	"gorm.io/gorm"
)

// DefaultUniqueRetries is how many times a transaction is re-run after a
// unique-key violation.
const DefaultUniqueRetries = 4

// WithTransaction executes the provided fn within a transaction while propagating context.
// The transaction DB instance passed to fn already includes the context, so repository methods
// can use it directly.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if err := repo.Create(ctx, tx, entity); err != nil {
//	        return err // rollback
//	    }
//	    return nil // commit
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}

// WithUniqueRetry runs fn in a transaction and re-runs the whole transaction with
// exponential backoff when it fails with gorm.ErrDuplicatedKey. Any other error
// stops immediately. After maxRetries the last duplicate-key error is returned.
//
// Use it for inserts whose unique value is derived from a read in the same
// transaction (scan-then-insert), such as identity codes.
func WithUniqueRetry(ctx context.Context, db *gorm.DB, maxRetries uint64, fn func(*gorm.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.FromContext(ctx)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 20 * time.Millisecond
	policy.MaxInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = 5 * time.Second

	attempt := 0
	operation := func() error {
		attempt++
		err := WithTransaction(ctx, db, fn)
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Warn("Violation de clé unique, nouvelle tentative de la transaction", "attempt", attempt, "error", err)
			return err
		}
		return backoff.Permanent(err)
	}

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx))
}
