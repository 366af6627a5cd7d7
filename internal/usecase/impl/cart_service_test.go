package impl

import (
	"context"
	"testing"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	mockUsecase "cofipos/internal/mocks/usecase"
	"cofipos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service usecase.CartUsecase
	catalog *mockUsecase.MockCatalogUsecase
	pool    *mockUsecase.MockEventPoolUsecase
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	pool := mockUsecase.NewMockEventPoolUsecase(t)
	service := NewCartService(catalog, pool)

	return cartServiceFixtures{
		service: service,
		catalog: catalog,
		pool:    pool,
	}
}

func TestCartService_StartSession_DefaultsToNormal(t *testing.T) {
	fx := createTestCartService(t)

	cart := fx.service.StartSession("")
	require.NotNil(t, cart)
	assert.NotEmpty(t, cart.ID)
	assert.Equal(t, entity.CartModeNormal, cart.Mode)
	assert.True(t, cart.Empty())
}

func TestCartService_GetCart_UnknownSession(t *testing.T) {
	fx := createTestCartService(t)

	cart, err := fx.service.GetCart("missing")
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, domainerrors.ErrCartSessionNotFound)
}

func TestCartService_AddItem_ReservesAndSnapshots(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil)

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 1).
		Return(nil)

	cart, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)

	line := cart.Lines[0]
	assert.Equal(t, product.ID, line.ProductID)
	assert.Equal(t, product.Name, line.Name)
	assert.Equal(t, product.Price, line.Price)
	assert.Equal(t, product.UnitCost, line.UnitCost)
	assert.Equal(t, 1, line.Quantity)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil).
		Times(2)

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 1).
		Return(nil).
		Times(2)

	_, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)
	cart, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCartService_AddItem_OutOfStockRejected(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()
	product.Stock = 0

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil)

	cart, err := fx.service.AddItem(ctx, session.ID, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	require.NotNil(t, cart)
	assert.True(t, cart.Empty())
}

func TestCartService_AddItem_SnapshotIgnoresLaterCatalogEdits(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil)

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 1).
		Return(nil)

	cart, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	product.Price = 999
	assert.Equal(t, 110.0, cart.Lines[0].Price)
}

func TestCartService_AddItem_EventModeChecksPool(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeEvent)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil)

	fx.pool.EXPECT().
		Get(ctx).
		Return(&entity.EventConfig{MaxCups: 50, RemainingCups: 10, IsActive: true}, nil)

	cart, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
}

func TestCartService_AddItem_EventModePoolDepleted(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeEvent)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil)

	fx.pool.EXPECT().
		Get(ctx).
		Return(&entity.EventConfig{MaxCups: 50, RemainingCups: 0, IsActive: true}, nil)

	cart, err := fx.service.AddItem(ctx, session.ID, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPoolDepleted)
	require.NotNil(t, cart)
	assert.True(t, cart.Empty())
}

func TestCartService_AddItem_EventModeCartCountsAgainstPool(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeEvent)
	product := testProduct()
	config := &entity.EventConfig{MaxCups: 50, RemainingCups: 1, IsActive: true}

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil).
		Times(2)

	fx.pool.EXPECT().
		Get(ctx).
		Return(config, nil).
		Times(2)

	_, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	// The single remaining cup is already claimed by the cart.
	cart, err := fx.service.AddItem(ctx, session.ID, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPoolDepleted)
	assert.Equal(t, 1, cart.TotalQuantity())
}

func TestCartService_UpdateQuantity_UnknownLineIsNoop(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)

	cart, err := fx.service.UpdateQuantity(ctx, session.ID, "missing", 1)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartService_UpdateQuantity_IncreaseReserves(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil).
		Times(2)

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 1).
		Return(nil)

	_, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 2).
		Return(nil)

	cart, err := fx.service.UpdateQuantity(ctx, session.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestCartService_UpdateQuantity_IncreaseBeyondStockRejected(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil).
		Once()

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 1).
		Return(nil)

	_, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	depleted := testProduct()
	depleted.Stock = 0
	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(depleted, nil)

	cart, err := fx.service.UpdateQuantity(ctx, session.ID, product.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCartService_UpdateQuantity_DecreaseReleasesAndRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil)

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 1).
		Return(nil)

	_, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	fx.catalog.EXPECT().
		ReleaseStock(ctx, product.ID, 1).
		Return(nil)

	cart, err := fx.service.UpdateQuantity(ctx, session.ID, product.ID, -1)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartService_UpdateQuantity_DecreaseClampsAtLineQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil)

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 1).
		Return(nil)

	_, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	// Only the single reserved unit comes back, not the full requested delta.
	fx.catalog.EXPECT().
		ReleaseStock(ctx, product.ID, 1).
		Return(nil)

	cart, err := fx.service.UpdateQuantity(ctx, session.ID, product.ID, -5)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartService_Clear_ReleasesAllLines(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil).
		Times(2)

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 1).
		Return(nil).
		Times(2)

	_, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	fx.catalog.EXPECT().
		ReleaseStock(ctx, product.ID, 2).
		Return(nil)

	err = fx.service.Clear(ctx, session.ID)
	require.NoError(t, err)

	cart, err := fx.service.GetCart(session.ID)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartService_Clear_EventModeTouchesNothing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeEvent)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil)

	fx.pool.EXPECT().
		Get(ctx).
		Return(&entity.EventConfig{MaxCups: 50, RemainingCups: 50, IsActive: true}, nil)

	_, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	err = fx.service.Clear(ctx, session.ID)
	require.NoError(t, err)

	cart, err := fx.service.GetCart(session.ID)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartService_Finalize_KeepsStockDecremented(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)
	product := testProduct()

	fx.catalog.EXPECT().
		GetProduct(ctx, product.ID).
		Return(product, nil)

	fx.catalog.EXPECT().
		ReserveStock(ctx, product.ID, 1).
		Return(nil)

	_, err := fx.service.AddItem(ctx, session.ID, product.ID)
	require.NoError(t, err)

	// No ReleaseStock expectation: finalize must not return the sold units.
	err = fx.service.Finalize(session.ID)
	require.NoError(t, err)

	cart, err := fx.service.GetCart(session.ID)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

func TestCartService_EndSession_DropsSession(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := fx.service.StartSession(entity.CartModeNormal)

	err := fx.service.EndSession(ctx, session.ID)
	require.NoError(t, err)

	_, err = fx.service.GetCart(session.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCartSessionNotFound)
}
