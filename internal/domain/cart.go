package domain

import "time"

// Cart represents a shopping cart for one storefront session.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem represents a single line item in the cart. Items are keyed by
// (product, size): the same product in two sizes is two line items.
type CartItem struct {
	ProductID         string `json:"product_id"`
	Size              string `json:"size"`
	Name              string `json:"name"`
	UnitPrice         int64  `json:"unit_price"`
	OriginalUnitPrice int64  `json:"original_unit_price,omitempty"`
	ImageURL          string `json:"image_url,omitempty"`
	Quantity          int    `json:"quantity"`
}

// Subtotal calculates the total price of all items in the cart
// (in minor currency units).
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// ItemCount returns the total number of units in the cart, not the number of
// distinct line items.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// FindItemIndex returns the index of the line item matching the given product
// ID and size. Returns -1 if not found.
func (c *Cart) FindItemIndex(productID, size string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			return i
		}
	}
	return -1
}
