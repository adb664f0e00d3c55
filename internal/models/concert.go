package models

import (
	"time"
)

type Concert struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	ArtistID  int        `json:"artist_id"`
	Day       int        `json:"day"`
	Venue     string     `json:"venue"`
	StartTime time.Time  `json:"start_time"`
	PosterURL string     `json:"poster_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Artist struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Genre     string     `json:"genre,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	Instagram string     `json:"instagram,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
