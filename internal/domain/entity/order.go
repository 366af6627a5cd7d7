package entity

import "time"

// OrderStatus tracks an order through preparation.
type OrderStatus string

const (
	// OrderStatusQueue marks an order accepted for preparation but not yet fulfilled.
	OrderStatusQueue OrderStatus = "queue"
	// OrderStatusDone marks a fulfilled order.
	OrderStatusDone OrderStatus = "done"
)

// OrderType records which sales mode produced the order.
type OrderType string

const (
	OrderTypeNormal OrderType = "normal"
	OrderTypeEvent  OrderType = "event"
)

// Order is the immutable record produced by checkout. Items are detached
// copies of the products sold, so later catalog edits never alter history.
// After creation only Status/CompletedBy (queue -> done, once) and the
// Archived flag ever change.
type Order struct {
	ID           string      `json:"id" firestore:"id"`
	CustomerName string      `json:"customerName" firestore:"customerName"`
	Items        []*CartLine `json:"items" firestore:"items"`
	Total        float64     `json:"total" firestore:"total"`
	Timestamp    time.Time   `json:"timestamp" firestore:"timestamp"`
	Status       OrderStatus `json:"status" firestore:"status"`
	Type         OrderType   `json:"type" firestore:"type"`
	CreatedBy    string      `json:"createdBy,omitempty" firestore:"createdBy"`
	CompletedBy  string      `json:"completedBy,omitempty" firestore:"completedBy"`
	Archived     bool        `json:"archived" firestore:"archived"`
}

// TotalQuantity is the number of units across all order items.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}

	return total
}

// EffectiveType treats orders written before the event mode existed as normal.
func (o *Order) EffectiveType() OrderType {
	if o.Type == "" {
		return OrderTypeNormal
	}

	return o.Type
}
