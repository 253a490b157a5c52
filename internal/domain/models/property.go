package models

// Property is the full persisted row, returned from create/update.
// price_per_night stays string-typed end to end (decimal column).
type Property struct {
	PropertyID    int64  `json:"property_id"`
	HostID        int64  `json:"host_id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	PropertyType  string `json:"property_type"`
	PricePerNight string `json:"price_per_night"`
	Description   string `json:"description"`
}

// PropertySummary is one item of the filtered list; host_id and description
// are deliberately excluded.
type PropertySummary struct {
	PropertyID    int64  `json:"property_id"`
	PropertyName  string `json:"property_name"`
	Location      string `json:"location"`
	PricePerNight string `json:"price_per_night"`
	Host          string `json:"host"`
	Popularity    int64  `json:"popularity"`
}

// PropertyDetail is the single-resource shape. Favourited is present only
// when the request carried a user_id.
type PropertyDetail struct {
	PropertyID     int64    `json:"property_id"`
	PropertyName   string   `json:"property_name"`
	Location       string   `json:"location"`
	PricePerNight  string   `json:"price_per_night"`
	Description    string   `json:"description"`
	Host           string   `json:"host"`
	HostAvatar     string   `json:"host_avatar"`
	FavouriteCount int64    `json:"favourite_count"`
	Favourited     *bool    `json:"favourited,omitempty"`
	Images         []string `json:"images"`
}

// PropertyPatch carries the validated PATCH payload; nil means "leave as is".
type PropertyPatch struct {
	Name          *string
	PropertyType  *string
	Location      *string
	PricePerNight *float64
	Description   *string
}

type PropertyType struct {
	PropertyType string `json:"property_type"`
	Description  string `json:"description"`
}
