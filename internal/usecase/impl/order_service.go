package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"strings"
	"time"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	"cofipos/internal/domain/repository"
	"cofipos/internal/domain/service"
	"cofipos/internal/errors"
	"cofipos/internal/usecase"
	"cofipos/internal/util"
)

const (
	orderIDLength   = 9
	orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

type orderService struct {
	orderRepo repository.OrderRepository
	pool      usecase.EventPoolUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	pool usecase.EventPoolUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		pool:      pool,
		publisher: publisher,
		logger:    logger,
	}
}

// Checkout creates an order from the cart snapshot with status queue. Event
// checkouts additionally commit the cup pool after the order write; the two
// writes are not atomic, so a commit failure is surfaced to the caller even
// though the order already exists.
func (s *orderService) Checkout(ctx context.Context, cart *entity.Cart, customerName string, staff *entity.Staff) (*entity.Order, error) {
	if cart == nil || cart.Empty() {
		return nil, domainerrors.ErrCartEmpty
	}

	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, domainerrors.ErrCustomerNameRequired
	}

	totalQty := cart.TotalQuantity()
	if cart.Mode == entity.CartModeEvent {
		config, err := s.pool.Get(ctx)
		if err != nil {
			return nil, err
		}
		if config.RemainingCups < totalQty {
			return nil, domainerrors.ErrPoolDepleted
		}
	}

	order := &entity.Order{
		ID:           newOrderID(),
		CustomerName: customerName,
		Items:        copyLines(cart.Lines),
		Total:        util.RoundCurrency(cart.Total()),
		Timestamp:    time.Now(),
		Status:       entity.OrderStatusQueue,
		Type:         orderType(cart.Mode),
		CreatedBy:    staffName(staff),
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	if cart.Mode == entity.CartModeEvent {
		if _, err := s.pool.Commit(ctx, totalQty); err != nil {
			return nil, errors.Wrapf(err, "order %s saved but pool commit failed", order.ID)
		}
	}

	s.publish(ctx, order)

	return order, nil
}

// Complete transitions a queue order to done, stamping CompletedBy. Completing
// an already-done order is an idempotent no-op and never overwrites the
// original CompletedBy.
func (s *orderService) Complete(ctx context.Context, orderID string, staff *entity.Staff) (*entity.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == entity.OrderStatusDone {
		return order, nil
	}

	order.Status = entity.OrderStatusDone
	order.CompletedBy = staffName(staff)

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	s.publish(ctx, order)

	return order, nil
}

// SetArchived toggles the archived flag, independent of status.
func (s *orderService) SetArchived(ctx context.Context, orderID string, archived bool) (*entity.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Archived == archived {
		return order, nil
	}

	order.Archived = archived
	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	return order, nil
}

func (s *orderService) findOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return order, nil
}

// publish fans the lifecycle change out to the message queue. Publish failures
// never fail the till operation; they are logged and dropped.
func (s *orderService) publish(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		OrderID:      order.ID,
		Status:       string(order.Status),
		Type:         string(order.EffectiveType()),
		CustomerName: order.CustomerName,
		Total:        order.Total,
		TotalQty:     order.TotalQuantity(),
		OccurredAt:   time.Now(),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order event",
			slog.String("order_id", order.ID),
			slog.String("status", string(order.Status)),
			slog.Any("error", err))
	}
}

func staffName(staff *entity.Staff) string {
	if staff == nil {
		return service.UnknownStaffName
	}

	return service.ResolveStaffName(staff.DisplayName, staff.Email)
}

func orderType(mode entity.CartMode) entity.OrderType {
	if mode == entity.CartModeEvent {
		return entity.OrderTypeEvent
	}

	return entity.OrderTypeNormal
}

func copyLines(lines []*entity.CartLine) []*entity.CartLine {
	copied := make([]*entity.CartLine, 0, len(lines))
	for _, line := range lines {
		item := *line
		copied = append(copied, &item)
	}

	return copied
}

// newOrderID returns a 9-character uppercase alphanumeric id, short enough to
// read back to a customer at the counter.
func newOrderID() string {
	buf := make([]byte, orderIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}

	id := make([]byte, orderIDLength)
	for i, b := range buf {
		id[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}

	return string(id)
}
