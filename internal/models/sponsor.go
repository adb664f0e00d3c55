package models

import (
	"time"
)

type Sponsor struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Tier      string    `json:"tier"`
	LogoURL   string    `json:"logo_url,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
