package models

import "time"

// OrderStatus is the fulfillment state of an order. Any status can move to any
// other status; there is no enforced forward-only progression.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusPacked     OrderStatus = "Packed"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

// OrderStatuses lists every status in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusProcessing, StatusPacked, StatusShipped, StatusDelivered}
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusProcessing, StatusPacked, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// Order records a completed checkout. Everything except Status is frozen at
// creation time: Items are cart-line snapshots and Total is never recomputed,
// even if catalog prices change afterwards.
type Order struct {
	ID        int64             `json:"id"`
	Items     []CartLine        `json:"items"`
	Total     float64           `json:"total"`
	Status    OrderStatus       `json:"status"`
	PlacedAt  time.Time         `json:"placedAt"`
	UserEmail string            `json:"userEmail"`
	Shipping  map[string]string `json:"shipping"`
}
