package models

import (
	"time"
)

type Accommodation struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PricePerDay float64   `json:"price_per_day"`
	Capacity    int       `json:"capacity"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}
