package domain

import "time"

// Category represents a product category. Names are unique, case-sensitive.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
