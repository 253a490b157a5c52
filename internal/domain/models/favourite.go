package models

type Favourite struct {
	FavouriteID int64 `json:"favourite_id"`
	GuestID     int64 `json:"guest_id"`
	PropertyID  int64 `json:"property_id"`
}

// FavouriteProperty is one row of GET /users/:id/favourites.
type FavouriteProperty struct {
	FavouriteID   int64  `json:"favourite_id"`
	PropertyID    int64  `json:"property_id"`
	PropertyName  string `json:"property_name"`
	Location      string `json:"location"`
	PricePerNight string `json:"price_per_night"`
	Host          string `json:"host"`
	Image         string `json:"image"`
}
