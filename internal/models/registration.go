package models

import (
	"time"
)

type Registration struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	EventID   int       `json:"event_id"`
	Status    string    `json:"status"` // pending, confirmed, cancelled
	CreatedAt time.Time `json:"created_at"`

	EventTitle string `json:"event_title,omitempty"`
	UserName   string `json:"user_name,omitempty"`
}
