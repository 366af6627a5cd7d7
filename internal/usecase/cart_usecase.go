package usecase

import (
	"context"

	"cofipos/internal/domain/entity"
)

// CartUsecase is the in-memory cart engine for terminal sessions. All checks
// against stock (normal mode) or the event cup pool (event mode) happen
// synchronously at add time, not at checkout.
type CartUsecase interface {
	// StartSession opens a new empty cart for a terminal in the given mode
	// and returns its session id.
	StartSession(mode entity.CartMode) *entity.Cart

	// GetCart returns the cart for a session.
	GetCart(sessionID string) (*entity.Cart, error)

	// AddItem adds one unit of the product to the cart. In normal mode the
	// unit is soft-reserved against the catalog; in event mode the shared
	// pool headroom is checked instead. Additions beyond the ceiling are
	// rejected as a no-op.
	AddItem(ctx context.Context, sessionID, productID string) (*entity.Cart, error)

	// UpdateQuantity changes a line's quantity by delta. Positive deltas
	// re-check the live ceiling; negative deltas always succeed down to zero
	// and release reserved stock in normal mode. A line reaching zero is
	// removed.
	UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*entity.Cart, error)

	// Clear empties the cart, releasing all soft-reserved stock in normal mode.
	Clear(ctx context.Context, sessionID string) error

	// Finalize empties the cart after a successful checkout without touching
	// the catalog (the sold units stay decremented).
	Finalize(sessionID string) error

	// EndSession clears the cart (releasing reservations) and drops the session.
	EndSession(ctx context.Context, sessionID string) error
}
