package usecase

import (
	"context"

	"cofipos/internal/domain/entity"
)

// EventPoolUsecase manages the capped cup allowance for event mode. The pool
// is independent of per-product stock: event sales deduct cups here and never
// touch the catalog.
type EventPoolUsecase interface {
	// Configure sets a new pool of maxCups (> 0), resetting remaining cups to
	// the maximum and activating event mode. Any in-progress pool is
	// overwritten, never merged.
	Configure(ctx context.Context, maxCups int) (*entity.EventConfig, error)

	// Get returns the current pool configuration.
	Get(ctx context.Context) (*entity.EventConfig, error)

	// PreviewRemaining returns max(0, remaining - cartQty) against the live
	// pool. Display-only; the authoritative deduction happens in Commit.
	PreviewRemaining(ctx context.Context, cartQty int) (int, error)

	// Commit deducts the checked-out quantity from the pool, clamped at
	// zero. It never rejects on magnitude; the add-time ceiling is expected
	// to prevent overshoot and Commit only floors defensively.
	Commit(ctx context.Context, qty int) (*entity.EventConfig, error)

	// Watch streams the pool configuration on every remote change until ctx
	// is cancelled.
	Watch(ctx context.Context) (<-chan *entity.EventConfig, error)
}
