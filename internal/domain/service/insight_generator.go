package service

import (
	"context"

	"cofipos/internal/domain/entity"
)

// InsightRequest carries the snapshot handed to the LLM. Orders are limited
// to the most recent slice by the caller; the generator never reads the
// store itself.
type InsightRequest struct {
	Products []*entity.Product
	Orders   []*entity.Order
}

// InsightGenerator produces actionable business insights from catalog and
// sales data via a third-party LLM.
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, req *InsightRequest) (*entity.InsightReport, error)
}
