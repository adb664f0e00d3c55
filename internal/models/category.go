package models

import (
	"time"
)

type Category struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
