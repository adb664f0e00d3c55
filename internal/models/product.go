package models

import (
	"time"
)

// Product is a merchandise item. Price is nullable on purpose: an item
// can be listed before its price is settled, and the payment flow must
// refuse to sell it until the price is set.
type Product struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       *float64   `json:"price"`
	ImageURL    string     `json:"image_url,omitempty"`
	Sizes       string     `json:"sizes,omitempty"`
	IsAvailable bool       `json:"is_available"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
