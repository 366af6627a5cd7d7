package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	"cofipos/internal/domain/repository"
	"cofipos/internal/domain/service"
	mockRepo "cofipos/internal/mocks/repository"
	mockService "cofipos/internal/mocks/service"
	mockUsecase "cofipos/internal/mocks/usecase"
	"cofipos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	pool      *mockUsecase.MockEventPoolUsecase
	publisher *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	pool := mockUsecase.NewMockEventPoolUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOrderService(orderRepo, pool, publisher, logger)

	return orderServiceFixtures{
		service:   svc,
		orderRepo: orderRepo,
		pool:      pool,
		publisher: publisher,
	}
}

func testCart(mode entity.CartMode) *entity.Cart {
	return &entity.Cart{
		ID:   "session-1",
		Mode: mode,
		Lines: []*entity.CartLine{
			{ProductID: "1", Name: "Classic Americano", Price: 110, UnitCost: 25, Category: "Hot Coffee", Quantity: 2},
			{ProductID: "3", Name: "Iced Spanish Latte", Price: 165, UnitCost: 50, Category: "Iced Coffee", Quantity: 1},
		},
	}
}

func testStaff() *entity.Staff {
	return &entity.Staff{
		UID:           "uid-1",
		DisplayName:   "Ana",
		Email:         "ana@example.com",
		EmailVerified: true,
	}
}

func TestOrderService_Checkout_Normal(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	cart := testCart(entity.CartModeNormal)

	fx.orderRepo.EXPECT().
		SaveOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.Checkout(ctx, cart, "Walk-in", testStaff())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-Z]{9}$`), order.ID)
	assert.Equal(t, "Walk-in", order.CustomerName)
	assert.Equal(t, entity.OrderStatusQueue, order.Status)
	assert.Equal(t, entity.OrderTypeNormal, order.Type)
	assert.Equal(t, "Ana", order.CreatedBy)
	assert.Empty(t, order.CompletedBy)
	assert.False(t, order.Archived)
	assert.InDelta(t, 385.0, order.Total, 0.001)
	assert.Equal(t, 3, order.TotalQuantity())
}

func TestOrderService_Checkout_ItemsDetachedFromCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	cart := testCart(entity.CartModeNormal)

	fx.orderRepo.EXPECT().
		SaveOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.Checkout(ctx, cart, "Walk-in", testStaff())
	require.NoError(t, err)

	cart.Lines[0].Price = 999
	cart.Lines[0].Quantity = 50
	assert.InDelta(t, 110.0, order.Items[0].Price, 0.001)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.Checkout(context.Background(), &entity.Cart{ID: "s", Mode: entity.CartModeNormal}, "Walk-in", nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_Checkout_BlankCustomerName(t *testing.T) {
	fx := createTestOrderService(t)

	cart := testCart(entity.CartModeNormal)
	order, err := fx.service.Checkout(context.Background(), cart, "   ", nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNameRequired)
}

func TestOrderService_Checkout_NilStaffRecordsUnknown(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	cart := testCart(entity.CartModeNormal)

	fx.orderRepo.EXPECT().
		SaveOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.Checkout(ctx, cart, "Walk-in", nil)
	require.NoError(t, err)
	assert.Equal(t, service.UnknownStaffName, order.CreatedBy)
}

func TestOrderService_Checkout_EventCommitsPool(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	cart := testCart(entity.CartModeEvent)

	fx.pool.EXPECT().
		Get(ctx).
		Return(&entity.EventConfig{MaxCups: 50, RemainingCups: 10, IsActive: true}, nil)

	fx.orderRepo.EXPECT().
		SaveOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.pool.EXPECT().
		Commit(ctx, 3).
		Return(&entity.EventConfig{MaxCups: 50, RemainingCups: 7, IsActive: true}, nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.Checkout(ctx, cart, "Event guest", testStaff())
	require.NoError(t, err)
	assert.Equal(t, entity.OrderTypeEvent, order.Type)
}

func TestOrderService_Checkout_EventPoolDepleted(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	cart := testCart(entity.CartModeEvent)

	fx.pool.EXPECT().
		Get(ctx).
		Return(&entity.EventConfig{MaxCups: 50, RemainingCups: 2, IsActive: true}, nil)

	order, err := fx.service.Checkout(ctx, cart, "Event guest", testStaff())
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPoolDepleted)
}

func TestOrderService_Checkout_EventCommitFailureSurfaced(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	cart := testCart(entity.CartModeEvent)

	fx.pool.EXPECT().
		Get(ctx).
		Return(&entity.EventConfig{MaxCups: 50, RemainingCups: 10, IsActive: true}, nil)

	fx.orderRepo.EXPECT().
		SaveOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.pool.EXPECT().
		Commit(ctx, 3).
		Return(nil, errors.New("store unavailable"))

	order, err := fx.service.Checkout(ctx, cart, "Event guest", testStaff())
	assert.Nil(t, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool commit failed")
}

func TestOrderService_Checkout_PublishFailureTolerated(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	cart := testCart(entity.CartModeNormal)

	fx.orderRepo.EXPECT().
		SaveOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("broker down"))

	order, err := fx.service.Checkout(ctx, cart, "Walk-in", testStaff())
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Complete_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	queued := &entity.Order{
		ID:           "ABC123XYZ",
		CustomerName: "Walk-in",
		Status:       entity.OrderStatusQueue,
		Type:         entity.OrderTypeNormal,
		CreatedBy:    "Ana",
	}

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, queued.ID).
		Return(queued, nil)

	fx.orderRepo.EXPECT().
		SaveOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.Complete(ctx, queued.ID, &entity.Staff{UID: "uid-2", DisplayName: "Ben"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDone, order.Status)
	assert.Equal(t, "Ben", order.CompletedBy)
}

func TestOrderService_Complete_AlreadyDoneIsNoop(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	done := &entity.Order{
		ID:          "ABC123XYZ",
		Status:      entity.OrderStatusDone,
		CompletedBy: "Ana",
	}

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, done.ID).
		Return(done, nil)

	// No SaveOrder expectation: completing twice must not rewrite the record.
	order, err := fx.service.Complete(ctx, done.ID, &entity.Staff{UID: "uid-2", DisplayName: "Ben"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDone, order.Status)
	assert.Equal(t, "Ana", order.CompletedBy)
}

func TestOrderService_Complete_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, "missing").
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.Complete(ctx, "missing", nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_SetArchived_Toggles(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	done := &entity.Order{ID: "ABC123XYZ", Status: entity.OrderStatusDone}

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, done.ID).
		Return(done, nil)

	fx.orderRepo.EXPECT().
		SaveOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.SetArchived(ctx, done.ID, true)
	require.NoError(t, err)
	assert.True(t, order.Archived)
}

func TestOrderService_SetArchived_SameValueIsNoop(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	archived := &entity.Order{ID: "ABC123XYZ", Status: entity.OrderStatusDone, Archived: true}

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, archived.ID).
		Return(archived, nil)

	order, err := fx.service.SetArchived(ctx, archived.ID, true)
	require.NoError(t, err)
	assert.True(t, order.Archived)
}

func TestNewOrderID_FormatAndUniqueness(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-Z]{9}$`)
	seen := make(map[string]struct{})

	for range 200 {
		id := newOrderID()
		assert.Regexp(t, pattern, id)
		seen[id] = struct{}{}
	}

	// Collisions across 200 draws from a 36^9 space would indicate a broken generator.
	assert.Len(t, seen, 200)
}
