package usecase

import (
	"context"

	"cofipos/internal/domain/entity"
)

// HistoryFilter narrows the fulfilled-order history view.
type HistoryFilter struct {
	// ShowArchived selects archived (true) or regular (false) done orders.
	ShowArchived bool
	// Type filters by order type; empty or "all" keeps everything.
	Type string
	// Search is a case-insensitive substring matched against customer name,
	// createdBy and completedBy.
	Search string
	// Date is a local calendar date in YYYY-MM-DD format; empty keeps all days.
	Date string
}

// HistorySummary aggregates a filtered history slice.
type HistorySummary struct {
	TotalSales float64 `json:"totalSales"`
	Count      int     `json:"count"`
}

// TypeBreakdown accumulates revenue and profit for one order type bucket.
type TypeBreakdown struct {
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Orders  int     `json:"orders"`
}

// ProductSales ranks one product by units sold.
type ProductSales struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
}

// CategorySales totals revenue for one category.
type CategorySales struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// ProfitReport is the dashboard projection over the non-archived order log.
type ProfitReport struct {
	Total       TypeBreakdown   `json:"total"`
	Normal      TypeBreakdown   `json:"normal"`
	Event       TypeBreakdown   `json:"event"`
	TopProducts []ProductSales  `json:"topProducts"`
	Categories  []CategorySales `json:"categories"`
}

// HistoryUsecase derives filtered, read-only views from the order log. It
// never mutates orders.
type HistoryUsecase interface {
	// ActiveQueue returns every order still in preparation, regardless of
	// the archived flag.
	ActiveQueue(ctx context.Context) ([]*entity.Order, error)

	// History returns done orders matching the filter, preserving the log's
	// newest-first ordering.
	History(ctx context.Context, filter HistoryFilter) ([]*entity.Order, error)

	// Aggregate sums a filtered slice. Pure.
	Aggregate(orders []*entity.Order) HistorySummary

	// ProfitAnalytics partitions the non-archived log by type and computes
	// revenue, item-level profit, top sellers and category totals.
	ProfitAnalytics(ctx context.Context) (*ProfitReport, error)

	// WatchQueue streams the active queue on every remote change until ctx
	// is cancelled.
	WatchQueue(ctx context.Context) (<-chan []*entity.Order, error)
}
