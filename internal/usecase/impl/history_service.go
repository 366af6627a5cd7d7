package impl

import (
	"context"
	"sort"
	"strings"

	"cofipos/internal/domain/entity"
	"cofipos/internal/domain/repository"
	"cofipos/internal/errors"
	"cofipos/internal/usecase"
	"cofipos/internal/util"
)

const topProductLimit = 5

type historyService struct {
	orderRepo repository.OrderRepository
}

// NewHistoryService creates a new history service instance
func NewHistoryService(orderRepo repository.OrderRepository) usecase.HistoryUsecase {
	return &historyService{
		orderRepo: orderRepo,
	}
}

// ActiveQueue returns every order still in preparation, regardless of the
// archived flag.
func (s *historyService) ActiveQueue(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return filterQueue(orders), nil
}

// History returns done orders matching the filter, preserving the log's
// newest-first ordering.
func (s *historyService) History(ctx context.Context, filter usecase.HistoryFilter) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return filterHistory(orders, filter), nil
}

// Aggregate sums a filtered slice.
func (s *historyService) Aggregate(orders []*entity.Order) usecase.HistorySummary {
	summary := usecase.HistorySummary{Count: len(orders)}
	for _, order := range orders {
		summary.TotalSales += order.Total
	}
	summary.TotalSales = util.RoundCurrency(summary.TotalSales)

	return summary
}

// ProfitAnalytics partitions the non-archived log by type and computes
// revenue, item-level profit, top sellers and category totals.
func (s *historyService) ProfitAnalytics(ctx context.Context) (*usecase.ProfitReport, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return buildProfitReport(orders), nil
}

// WatchQueue streams the active queue on every remote change until ctx is
// cancelled.
func (s *historyService) WatchQueue(ctx context.Context) (<-chan []*entity.Order, error) {
	updates, err := s.orderRepo.WatchOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch orders")
	}

	queue := make(chan []*entity.Order)
	go func() {
		defer close(queue)
		for orders := range updates {
			select {
			case queue <- filterQueue(orders):
			case <-ctx.Done():
				return
			}
		}
	}()

	return queue, nil
}

func filterQueue(orders []*entity.Order) []*entity.Order {
	queued := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == entity.OrderStatusQueue {
			queued = append(queued, order)
		}
	}

	return queued
}

func filterHistory(orders []*entity.Order, filter usecase.HistoryFilter) []*entity.Order {
	matched := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if matchesHistory(order, filter) {
			matched = append(matched, order)
		}
	}

	return matched
}

func matchesHistory(order *entity.Order, filter usecase.HistoryFilter) bool {
	if order.Status != entity.OrderStatusDone {
		return false
	}
	if order.Archived != filter.ShowArchived {
		return false
	}
	if !matchesType(order, filter.Type) {
		return false
	}
	if !matchesSearch(order, filter.Search) {
		return false
	}

	return matchesDate(order, filter.Date)
}

func matchesType(order *entity.Order, orderType string) bool {
	if orderType == "" || orderType == "all" {
		return true
	}

	return string(order.EffectiveType()) == orderType
}

func matchesSearch(order *entity.Order, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}

	return strings.Contains(strings.ToLower(order.CustomerName), needle) ||
		strings.Contains(strings.ToLower(order.CreatedBy), needle) ||
		strings.Contains(strings.ToLower(order.CompletedBy), needle)
}

// matchesDate compares on the local calendar day, matching how the till staff
// think about "today's sales".
func matchesDate(order *entity.Order, date string) bool {
	if date == "" {
		return true
	}

	return order.Timestamp.Local().Format("2006-01-02") == date
}

func buildProfitReport(orders []*entity.Order) *usecase.ProfitReport {
	report := &usecase.ProfitReport{}
	productTotals := make(map[string]*usecase.ProductSales)
	categoryTotals := make(map[string]float64)

	for _, order := range orders {
		if order.Archived {
			continue
		}

		profit := orderProfit(order)
		accumulate(&report.Total, order, profit)
		if order.EffectiveType() == entity.OrderTypeEvent {
			accumulate(&report.Event, order, profit)
		} else {
			accumulate(&report.Normal, order, profit)
		}

		for _, item := range order.Items {
			sales, ok := productTotals[item.ProductID]
			if !ok {
				sales = &usecase.ProductSales{
					ProductID: item.ProductID,
					Name:      item.Name,
					Image:     item.Image,
				}
				productTotals[item.ProductID] = sales
			}
			sales.Quantity += item.Quantity
			sales.Revenue += item.Price * float64(item.Quantity)
			sales.Profit += (item.Price - item.UnitCost) * float64(item.Quantity)

			categoryTotals[item.Category] += item.Price * float64(item.Quantity)
		}
	}

	report.TopProducts = rankProducts(productTotals)
	report.Categories = rankCategories(categoryTotals)
	roundBreakdown(&report.Total)
	roundBreakdown(&report.Normal)
	roundBreakdown(&report.Event)

	return report
}

// orderProfit sums item-level margin. The archived order total is ignored on
// purpose: profit always derives from the frozen per-item cost snapshots.
func orderProfit(order *entity.Order) float64 {
	profit := 0.0
	for _, item := range order.Items {
		profit += (item.Price - item.UnitCost) * float64(item.Quantity)
	}

	return profit
}

func accumulate(breakdown *usecase.TypeBreakdown, order *entity.Order, profit float64) {
	breakdown.Revenue += order.Total
	breakdown.Profit += profit
	breakdown.Orders++
}

func roundBreakdown(breakdown *usecase.TypeBreakdown) {
	breakdown.Revenue = util.RoundCurrency(breakdown.Revenue)
	breakdown.Profit = util.RoundCurrency(breakdown.Profit)
}

func rankProducts(totals map[string]*usecase.ProductSales) []usecase.ProductSales {
	ranked := make([]usecase.ProductSales, 0, len(totals))
	for _, sales := range totals {
		sales.Revenue = util.RoundCurrency(sales.Revenue)
		sales.Profit = util.RoundCurrency(sales.Profit)
		ranked = append(ranked, *sales)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}

		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > topProductLimit {
		ranked = ranked[:topProductLimit]
	}

	return ranked
}

func rankCategories(totals map[string]float64) []usecase.CategorySales {
	ranked := make([]usecase.CategorySales, 0, len(totals))
	for category, revenue := range totals {
		ranked = append(ranked, usecase.CategorySales{
			Category: category,
			Revenue:  util.RoundCurrency(revenue),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}

		return ranked[i].Category < ranked[j].Category
	})

	return ranked
}
