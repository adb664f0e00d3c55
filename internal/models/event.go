package models

import (
	"time"
)

type Event struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	CategoryID       int        `json:"category_id"`
	Venue            string     `json:"venue"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          time.Time  `json:"end_time"`
	Rules            string     `json:"rules,omitempty"`
	PrizePool        *float64   `json:"prize_pool,omitempty"`
	PosterURL        string     `json:"poster_url,omitempty"`
	RegistrationOpen bool       `json:"registration_open"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
