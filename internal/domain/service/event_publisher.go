package service

import (
	"context"
	"time"
)

// OrderEvent is published whenever an order enters or leaves the queue, so
// downstream consumers (kitchen displays, reporting) can react without
// polling the store.
type OrderEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID      string    `json:"order_id"`
	Status       string    `json:"status"`
	Type         string    `json:"type"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	TotalQty     int       `json:"total_qty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order lifecycle events
// to a message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
