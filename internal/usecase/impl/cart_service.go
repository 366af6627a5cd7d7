package impl

import (
	"context"
	"sync"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	"cofipos/internal/errors"
	"cofipos/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	catalog usecase.CatalogUsecase
	pool    usecase.EventPoolUsecase

	mu       sync.RWMutex
	sessions map[string]*entity.Cart
}

// NewCartService creates a new cart service instance. Sessions are held in
// process memory; a terminal that loses its session simply starts a new cart.
func NewCartService(catalog usecase.CatalogUsecase, pool usecase.EventPoolUsecase) usecase.CartUsecase {
	return &cartService{
		catalog:  catalog,
		pool:     pool,
		sessions: make(map[string]*entity.Cart),
	}
}

// StartSession opens a new empty cart for a terminal in the given mode.
func (s *cartService) StartSession(mode entity.CartMode) *entity.Cart {
	if mode != entity.CartModeEvent {
		mode = entity.CartModeNormal
	}

	cart := &entity.Cart{
		ID:   uuid.NewString(),
		Mode: mode,
	}

	s.mu.Lock()
	s.sessions[cart.ID] = cart
	s.mu.Unlock()

	return cart
}

// GetCart returns the cart for a session.
func (s *cartService) GetCart(sessionID string) (*entity.Cart, error) {
	s.mu.RLock()
	cart, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, domainerrors.ErrCartSessionNotFound
	}

	return cart, nil
}

// AddItem adds one unit of the product to the cart, soft-reserving it against
// the governing ceiling first.
func (s *cartService) AddItem(ctx context.Context, sessionID, productID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrCartSessionNotFound
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if cart.Mode == entity.CartModeEvent {
		config, err := s.pool.Get(ctx)
		if err != nil {
			return nil, err
		}
		if config.RemainingCups-cart.TotalQuantity() <= 0 {
			return cart, domainerrors.ErrPoolDepleted
		}
	} else {
		if product.Stock <= 0 {
			return cart, domainerrors.ErrInsufficientStock
		}
		if err := s.catalog.ReserveStock(ctx, productID, 1); err != nil {
			return nil, err
		}
	}

	if line := cart.Line(productID); line != nil {
		line.Quantity++
	} else {
		cart.Lines = append(cart.Lines, entity.SnapshotLine(product, 1))
	}

	return cart, nil
}

// UpdateQuantity changes a line's quantity by delta. Positive deltas re-check
// the live ceiling; negative deltas always succeed down to zero.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrCartSessionNotFound
	}

	line := cart.Line(productID)
	if line == nil || delta == 0 {
		return cart, nil
	}

	if delta > 0 {
		return s.increaseLine(ctx, cart, line, delta)
	}

	return s.decreaseLine(ctx, cart, line, -delta)
}

func (s *cartService) increaseLine(ctx context.Context, cart *entity.Cart, line *entity.CartLine, delta int) (*entity.Cart, error) {
	if cart.Mode == entity.CartModeEvent {
		config, err := s.pool.Get(ctx)
		if err != nil {
			return nil, err
		}
		if config.RemainingCups-cart.TotalQuantity()-delta < 0 {
			return cart, domainerrors.ErrPoolDepleted
		}

		line.Quantity += delta

		return cart, nil
	}

	product, err := s.catalog.GetProduct(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return cart, domainerrors.ErrInsufficientStock
		}

		return nil, err
	}
	if product.Stock < delta {
		return cart, domainerrors.ErrInsufficientStock
	}

	if err := s.catalog.ReserveStock(ctx, line.ProductID, delta); err != nil {
		return nil, err
	}
	line.Quantity += delta

	return cart, nil
}

func (s *cartService) decreaseLine(ctx context.Context, cart *entity.Cart, line *entity.CartLine, delta int) (*entity.Cart, error) {
	if delta > line.Quantity {
		delta = line.Quantity
	}

	if cart.Mode == entity.CartModeNormal {
		if err := s.catalog.ReleaseStock(ctx, line.ProductID, delta); err != nil {
			return nil, err
		}
	}

	line.Quantity -= delta
	if line.Quantity <= 0 {
		s.removeLine(cart, line.ProductID)
	}

	return cart, nil
}

func (s *cartService) removeLine(cart *entity.Cart, productID string) {
	for i, line := range cart.Lines {
		if line.ProductID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)

			return
		}
	}
}

// Clear empties the cart, releasing all soft-reserved stock in normal mode.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clearLocked(ctx, sessionID)
}

func (s *cartService) clearLocked(ctx context.Context, sessionID string) error {
	cart, ok := s.sessions[sessionID]
	if !ok {
		return domainerrors.ErrCartSessionNotFound
	}

	if cart.Mode == entity.CartModeNormal {
		for _, line := range cart.Lines {
			if err := s.catalog.ReleaseStock(ctx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
	}

	cart.Lines = nil

	return nil
}

// Finalize empties the cart after a successful checkout without touching the
// catalog. The sold units stay decremented.
func (s *cartService) Finalize(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.sessions[sessionID]
	if !ok {
		return domainerrors.ErrCartSessionNotFound
	}

	cart.Lines = nil

	return nil
}

// EndSession clears the cart, releasing reservations, and drops the session.
func (s *cartService) EndSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.clearLocked(ctx, sessionID); err != nil {
		return err
	}
	delete(s.sessions, sessionID)

	return nil
}
