package model

type Amenity struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
	TrailsCount int     `json:"trails_count"`
	CreatedAt   string  `json:"created_at"`
}

type AmenityPayload struct {
	Name        string `json:"name" validate:"required,max=255"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// AmenityFilters is empty: the amenities endpoint returns the full list.
type AmenityFilters struct{}
