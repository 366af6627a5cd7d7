package usecase

import (
	"context"

	"cofipos/internal/domain/entity"
)

// OrderUsecase converts cart snapshots into immutable order records and
// drives the two lifecycle mutations an order ever sees: queue -> done and
// the archived flag.
type OrderUsecase interface {
	// Checkout creates an order from the cart snapshot with status queue.
	// Normal-mode stock is untouched (already soft-reserved at add time);
	// event-mode checkout additionally commits the cup pool. The caller is
	// responsible for finalizing the cart afterwards.
	Checkout(ctx context.Context, cart *entity.Cart, customerName string, staff *entity.Staff) (*entity.Order, error)

	// Complete transitions a queue order to done, stamping CompletedBy.
	// Completing an already-done order is an idempotent no-op and never
	// overwrites the original CompletedBy.
	Complete(ctx context.Context, orderID string, staff *entity.Staff) (*entity.Order, error)

	// SetArchived toggles the archived flag, independent of status.
	SetArchived(ctx context.Context, orderID string, archived bool) (*entity.Order, error)
}
