package domain

import "time"

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order represents a recorded customer order. Items are a snapshot of the
// purchased line items at checkout time: later catalog edits never alter an
// order's history.
type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	Subtotal      int64       `json:"subtotal"`
	DeliveryFee   int64       `json:"delivery_fee"`
	Total         int64       `json:"total"`
	Status        string      `json:"status"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is one purchased line item frozen into an order.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// ValidStatuses returns all valid order statuses.
func ValidStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// IsValidStatus checks if a status string is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// AllowedTransitions defines which status transitions are valid. Statuses
// move only forward (or laterally to cancelled) via explicit admin action;
// there are no automatic transitions.
func AllowedTransitions() map[string][]string {
	return map[string][]string{
		OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:   {OrderStatusDelivered},
		OrderStatusDelivered: {},
		OrderStatusCancelled: {},
	}
}

// CanTransitionTo checks if the order can transition to the target status.
func (o *Order) CanTransitionTo(target string) bool {
	allowed, ok := AllowedTransitions()[o.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}
