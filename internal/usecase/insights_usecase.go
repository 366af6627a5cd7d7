package usecase

import (
	"context"

	"cofipos/internal/domain/entity"
)

// InsightsUsecase assembles the catalog and recent sales snapshot and asks
// the LLM-backed generator for actionable observations.
type InsightsUsecase interface {
	BusinessInsights(ctx context.Context) (*entity.InsightReport, error)
}
