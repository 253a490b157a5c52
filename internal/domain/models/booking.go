package models

import "time"

// Booking dates travel as YYYY-MM-DD strings; created_at is a timestamp.
type Booking struct {
	BookingID    int64     `json:"booking_id"`
	PropertyID   int64     `json:"property_id,omitempty"`
	GuestID      int64     `json:"guest_id,omitempty"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserBooking is one row of GET /users/:id/bookings, joined with the property.
type UserBooking struct {
	BookingID    int64  `json:"booking_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	PropertyID   int64  `json:"property_id"`
	PropertyName string `json:"property_name"`
	Host         string `json:"host"`
	Image        string `json:"image"`
}

type BookingPatch struct {
	CheckInDate  *string
	CheckOutDate *string
}

// BookingConfirmation is the joined data behind the confirmation PDF.
type BookingConfirmation struct {
	BookingID    int64
	CheckInDate  string
	CheckOutDate string
	PropertyName string
	Location     string
	Host         string
	Guest        string
	PricePerNight string
}
