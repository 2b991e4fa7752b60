package domain

import "time"

// Product represents a product in the boutique catalog.
//
// Price and OriginalPrice are in minor currency units; OriginalPrice ≥ Price
// for a valid discount display. Sizes preserves display order.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"original_price"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
	Images        []string  `json:"images"`
	Description   string    `json:"description"`
	Sizes         []string  `json:"sizes"`
	Bestseller    bool      `json:"bestseller"`
	InStock       bool      `json:"in_stock"`
	NewArrival    bool      `json:"new_arrival"`
	CreatedAt     time.Time `json:"created_at"`
}

// DefaultSizes returns the size set used when a product specifies none.
func DefaultSizes() []string {
	return []string{"XS", "S", "M", "L", "XL", "XXL"}
}

// DisplayImages returns the ordered image list, falling back to the primary
// image when no gallery is set.
func (p *Product) DisplayImages() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return []string{}
}
