package impl

import (
	"context"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	"cofipos/internal/domain/repository"
	"cofipos/internal/domain/service"
	"cofipos/internal/errors"
	"cofipos/internal/usecase"
)

// recentOrderLimit caps how much sales history is handed to the LLM per
// request, keeping the prompt within a predictable token budget.
const recentOrderLimit = 20

type insightsService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	generator   service.InsightGenerator
}

// NewInsightsService creates a new insights service instance. The generator
// may be nil when no LLM credentials are configured; requests then fail with
// a service-unavailable error instead of breaking startup.
func NewInsightsService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	generator service.InsightGenerator,
) usecase.InsightsUsecase {
	return &insightsService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		generator:   generator,
	}
}

// BusinessInsights snapshots the catalog and the most recent orders and asks
// the generator for actionable observations.
func (s *insightsService) BusinessInsights(ctx context.Context) (*entity.InsightReport, error) {
	if s.generator == nil {
		return nil, domainerrors.ErrInsightsUnavailable
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	if len(orders) > recentOrderLimit {
		orders = orders[:recentOrderLimit]
	}

	report, err := s.generator.GenerateInsights(ctx, &service.InsightRequest{
		Products: products,
		Orders:   orders,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate insights")
	}

	return report, nil
}
