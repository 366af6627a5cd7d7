package impl

import (
	"context"
	"testing"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	"cofipos/internal/domain/service"
	mockRepo "cofipos/internal/mocks/repository"
	mockService "cofipos/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// insightsServiceFixtures holds all test dependencies for insights service tests.
type insightsServiceFixtures struct {
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	generator   *mockService.MockInsightGenerator
}

func createTestInsightsService(t *testing.T) insightsServiceFixtures {
	return insightsServiceFixtures{
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		generator:   mockService.NewMockInsightGenerator(t),
	}
}

func TestInsightsService_BusinessInsights(t *testing.T) {
	fx := createTestInsightsService(t)
	svc := NewInsightsService(fx.productRepo, fx.orderRepo, fx.generator)

	ctx := context.Background()
	products := []*entity.Product{{ID: "1", Name: "Classic Americano"}}
	orders := []*entity.Order{{ID: "DONE00001"}}
	expected := &entity.InsightReport{Insights: []entity.Insight{
		{Title: "Restock hot coffee", Description: "Americano is close to selling out", Priority: "high", Icon: "inventory"},
	}}

	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return(products, nil)

	fx.orderRepo.EXPECT().
		ListOrders(ctx).
		Return(orders, nil)

	fx.generator.EXPECT().
		GenerateInsights(ctx, &service.InsightRequest{Products: products, Orders: orders}).
		Return(expected, nil)

	report, err := svc.BusinessInsights(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestInsightsService_BusinessInsights_LimitsRecentOrders(t *testing.T) {
	fx := createTestInsightsService(t)
	svc := NewInsightsService(fx.productRepo, fx.orderRepo, fx.generator)

	ctx := context.Background()
	orders := make([]*entity.Order, 0, 30)
	for range 30 {
		orders = append(orders, &entity.Order{ID: newOrderID()})
	}

	fx.productRepo.EXPECT().
		ListProducts(ctx).
		Return(nil, nil)

	fx.orderRepo.EXPECT().
		ListOrders(ctx).
		Return(orders, nil)

	fx.generator.EXPECT().
		GenerateInsights(ctx, &service.InsightRequest{Orders: orders[:recentOrderLimit]}).
		Return(&entity.InsightReport{}, nil)

	_, err := svc.BusinessInsights(ctx)
	require.NoError(t, err)
}

func TestInsightsService_BusinessInsights_NotConfigured(t *testing.T) {
	fx := createTestInsightsService(t)
	svc := NewInsightsService(fx.productRepo, fx.orderRepo, nil)

	report, err := svc.BusinessInsights(context.Background())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domainerrors.ErrInsightsUnavailable)
}
