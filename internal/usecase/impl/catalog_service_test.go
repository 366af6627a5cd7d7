package impl

import (
	"context"
	"testing"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	"cofipos/internal/domain/repository"
	mockRepo "cofipos/internal/mocks/repository"
	"cofipos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo)

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:       "p-1",
		Name:     "Classic Americano",
		Price:    110,
		UnitCost: 25,
		Category: "Hot Coffee",
		Stock:    45,
	}
}

func TestCatalogService_UpsertProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct()

	fx.productRepo.EXPECT().
		SaveProduct(ctx, product).
		Return(nil)

	err := fx.service.UpsertProduct(ctx, product)
	require.NoError(t, err)
}

func TestCatalogService_UpsertProduct_GeneratesID(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct()
	product.ID = ""

	fx.productRepo.EXPECT().
		SaveProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	err := fx.service.UpsertProduct(ctx, product)
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
}

func TestCatalogService_UpsertProduct_BlankName(t *testing.T) {
	fx := createTestCatalogService(t)

	product := testProduct()
	product.Name = "   "

	err := fx.service.UpsertProduct(context.Background(), product)
	assert.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProductInvalid.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_UpsertProduct_NegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	product := testProduct()
	product.Price = -1

	err := fx.service.UpsertProduct(context.Background(), product)
	assert.Error(t, err)
}

func TestCatalogService_UpsertProduct_NegativeStock(t *testing.T) {
	fx := createTestCatalogService(t)

	product := testProduct()
	product.Stock = -1

	err := fx.service.UpsertProduct(context.Background(), product)
	assert.Error(t, err)
}

func TestCatalogService_RemoveProduct_NotFoundIsNoop(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		DeleteProduct(ctx, "missing").
		Return(repository.ErrProductNotFound)

	err := fx.service.RemoveProduct(ctx, "missing")
	require.NoError(t, err)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindProductByID(ctx, "missing").
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, "missing")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_SearchProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	catalog := []*entity.Product{
		{ID: "1", Name: "Classic Americano", Category: "Hot Coffee"},
		{ID: "2", Name: "Iced Spanish Latte", Category: "Iced Coffee"},
		{ID: "3", Name: "Strawberry Soda", Category: "Soda"},
	}

	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return(catalog, nil)

	matched, err := fx.service.SearchProducts(ctx, "coffee")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].ID)
	assert.Equal(t, "2", matched[1].ID)
}

func TestCatalogService_SearchProducts_EmptyTermReturnsAll(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	catalog := []*entity.Product{{ID: "1"}, {ID: "2"}}

	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return(catalog, nil)

	matched, err := fx.service.SearchProducts(ctx, "  ")
	require.NoError(t, err)
	assert.Equal(t, catalog, matched)
}

func TestCatalogService_UpdateStock_Negative(t *testing.T) {
	fx := createTestCatalogService(t)

	err := fx.service.UpdateStock(context.Background(), "p-1", -5)
	assert.Error(t, err)
}

func TestCatalogService_ReserveStock_Decrements(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct()
	product.Stock = 10

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.productRepo.EXPECT().
		SaveProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, saved *entity.Product) {
			assert.Equal(t, 7, saved.Stock)
		}).
		Return(nil)

	err := fx.service.ReserveStock(ctx, product.ID, 3)
	require.NoError(t, err)
}

func TestCatalogService_ReserveStock_FloorsAtZero(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct()
	product.Stock = 2

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.productRepo.EXPECT().
		SaveProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, saved *entity.Product) {
			assert.Equal(t, 0, saved.Stock)
		}).
		Return(nil)

	err := fx.service.ReserveStock(ctx, product.ID, 5)
	require.NoError(t, err)
}

func TestCatalogService_ReserveStock_UnknownIDIsNoop(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindProductByID(ctx, "missing").
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.ReserveStock(ctx, "missing", 1)
	require.NoError(t, err)
}

func TestCatalogService_ReleaseStock_Increments(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct()
	product.Stock = 0

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.productRepo.EXPECT().
		SaveProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, saved *entity.Product) {
			assert.Equal(t, 4, saved.Stock)
		}).
		Return(nil)

	err := fx.service.ReleaseStock(ctx, product.ID, 4)
	require.NoError(t, err)
}

func TestCatalogService_SeedDefaults_SkipsNonEmptyStore(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return([]*entity.Product{testProduct()}, nil)

	err := fx.service.SeedDefaults(ctx)
	require.NoError(t, err)
}

func TestCatalogService_SeedDefaults_PopulatesEmptyStore(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return(nil, nil)

	seeded := 0
	fx.productRepo.EXPECT().
		SaveProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, _ *entity.Product) {
			seeded++
		}).
		Return(nil)

	err := fx.service.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defaultCatalog()), seeded)
}

func TestCatalogService_ListProducts_StoreError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	expectedErr := errors.New("store unavailable")
	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return(nil, expectedErr)

	products, err := fx.service.ListProducts(ctx)
	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to list products")
}

func TestCatalogService_WatchCatalog_PassesThroughUpdates(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	source := make(chan []*entity.Product, 1)
	source <- []*entity.Product{testProduct()}
	close(source)

	fx.productRepo.EXPECT().
		WatchProducts(ctx).
		Return((<-chan []*entity.Product)(source), nil)

	updates, err := fx.service.WatchCatalog(ctx)
	require.NoError(t, err)

	products := <-updates
	require.Len(t, products, 1)
	assert.Equal(t, "p-1", products[0].ID)
}
