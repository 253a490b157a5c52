package models

import "time"

type Review struct {
	ReviewID   int64     `json:"review_id"`
	PropertyID int64     `json:"property_id,omitempty"`
	GuestID    int64     `json:"guest_id,omitempty"`
	Rating     int64     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`

	// Populated on nested list reads only.
	Guest       string `json:"guest,omitempty"`
	GuestAvatar string `json:"guest_avatar,omitempty"`
}
