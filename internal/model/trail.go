package model

type TrailStatus string

const (
	TrailDraft     TrailStatus = "draft"
	TrailPublished TrailStatus = "published"
	TrailArchived  TrailStatus = "archived"
)

type TrailRoute struct {
	ID         int64   `json:"id"`
	Label      string  `json:"label"`
	Name       *string `json:"name"`
	Directions *string `json:"directions"`
	Latitude   Decimal `json:"latitude"`
	Longitude  Decimal `json:"longitude"`
	// Path is an encoded polyline of the route line when the backend has one.
	Path   string  `json:"path,omitempty"`
	Images []Media `json:"images"`
}

type TrailGalleryImage struct {
	ID        int64   `json:"id"`
	MediaID   int64   `json:"media_id"`
	Caption   *string `json:"caption"`
	SortOrder int     `json:"sort_order"`
	Media     *Media  `json:"media"`
}

type TrailGpxFile struct {
	ID      int64  `json:"id"`
	MediaID int64  `json:"media_id"`
	Name    string `json:"name"`
	Media   *Media `json:"media"`
}

type ItineraryDay struct {
	ID                int64   `json:"id"`
	DayNumber         int     `json:"day_number"`
	Title             string  `json:"title"`
	Description       *string `json:"description"`
	DistanceKm        Decimal `json:"distance_km"`
	ElevationGainM    Decimal `json:"elevation_gain_m"`
	OvernightLocation *string `json:"overnight_location"`
	SortOrder         int     `json:"sort_order"`
}

type County struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsPopular bool   `json:"is_popular"`
}

type CountyOption struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	IsPopular bool   `json:"is_popular"`
}

// CountyGroups is the /admin/trails/counties payload: slug -> name.
type CountyGroups struct {
	Popular map[string]string `json:"popular"`
	Other   map[string]string `json:"other"`
}

type Trail struct {
	ID                int64               `json:"id"`
	Name              string              `json:"name"`
	Slug              string              `json:"slug"`
	ShortDescription  *string             `json:"short_description"`
	Description       string              `json:"description"`
	Difficulty        Difficulty          `json:"difficulty"`
	DistanceKm        Decimal             `json:"distance_km"`
	DurationMin       Decimal             `json:"duration_min"`
	DurationMax       Decimal             `json:"duration_max"`
	ElevationGainM    Decimal             `json:"elevation_gain_m"`
	MaxAltitudeM      Decimal             `json:"max_altitude_m"`
	IsYearRound       bool                `json:"is_year_round"`
	SeasonNotes       *string             `json:"season_notes"`
	RequiresGuide     bool                `json:"requires_guide"`
	RequiresPermit    bool                `json:"requires_permit"`
	PermitInfo        *string             `json:"permit_info"`
	AccessibilityInfo *string             `json:"accessibility_info"`
	Latitude          Decimal             `json:"latitude"`
	Longitude         Decimal             `json:"longitude"`
	LocationName      *string             `json:"location_name"`
	County            *County             `json:"county"`
	CountyID          *int64              `json:"county_id"`
	Status            TrailStatus         `json:"status"`
	IsFeatured        bool                `json:"is_featured"`
	IsMultiDay        bool                `json:"is_multi_day"`
	FeaturedImage     *Media              `json:"featured_image"`
	RouteA            *TrailRoute         `json:"route_a"`
	RouteB            *TrailRoute         `json:"route_b"`
	Gallery           []TrailGalleryImage `json:"gallery"`
	GpxFiles          []TrailGpxFile      `json:"gpx_files"`
	Amenities         []Amenity           `json:"amenities"`
	Itinerary         []ItineraryDay      `json:"itinerary"`
	CreatedAt         string              `json:"created_at"`
	UpdatedAt         string              `json:"updated_at"`
	DeletedAt         *string             `json:"deleted_at"`
}

type TrailFilters struct {
	Page        int         `url:"page,omitempty"`
	PerPage     int         `url:"per_page,omitempty"`
	Search      string      `url:"search,omitempty"`
	Status      TrailStatus `url:"status,omitempty"`
	Difficulty  Difficulty  `url:"difficulty,omitempty"`
	CountySlug  string      `url:"county_slug,omitempty"`
	WithDeleted bool        `url:"with_deleted,omitempty,int"`
	SortBy      string      `url:"sort_by,omitempty"`
	SortDir     string      `url:"sort_dir,omitempty"`
}

type RoutePayload struct {
	Name       string   `json:"name,omitempty"`
	Directions string   `json:"directions,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	ImageIDs   []int64  `json:"image_ids,omitempty"`
	Path       string   `json:"path,omitempty"`
}

type GalleryItemPayload struct {
	MediaID   int64  `json:"media_id"`
	Caption   string `json:"caption,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type ItineraryDayPayload struct {
	DayNumber         int      `json:"day_number"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	DistanceKm        *float64 `json:"distance_km,omitempty"`
	ElevationGainM    *float64 `json:"elevation_gain_m,omitempty"`
	OvernightLocation string   `json:"overnight_location,omitempty"`
	SortOrder         int      `json:"sort_order"`
}

// TrailPayload is the create/update body. The gallery and itinerary are
// always sent whole.
type TrailPayload struct {
	Name              string                `json:"name"`
	ShortDescription  string                `json:"short_description,omitempty"`
	Description       string                `json:"description,omitempty"`
	Difficulty        Difficulty            `json:"difficulty,omitempty"`
	DistanceKm        *float64              `json:"distance_km,omitempty"`
	DurationMin       *float64              `json:"duration_min,omitempty"`
	DurationMax       *float64              `json:"duration_max,omitempty"`
	ElevationGainM    *float64              `json:"elevation_gain_m,omitempty"`
	MaxAltitudeM      *float64              `json:"max_altitude_m,omitempty"`
	IsYearRound       bool                  `json:"is_year_round"`
	SeasonNotes       string                `json:"season_notes,omitempty"`
	RequiresGuide     bool                  `json:"requires_guide"`
	RequiresPermit    bool                  `json:"requires_permit"`
	PermitInfo        string                `json:"permit_info,omitempty"`
	AccessibilityInfo string                `json:"accessibility_info,omitempty"`
	Latitude          *float64              `json:"latitude,omitempty"`
	Longitude         *float64              `json:"longitude,omitempty"`
	LocationName      string                `json:"location_name,omitempty"`
	CountyID          *int64                `json:"county_id,omitempty"`
	CountySlug        string                `json:"county_slug,omitempty"`
	Status            TrailStatus           `json:"status,omitempty"`
	IsFeatured        bool                  `json:"is_featured"`
	IsMultiDay        bool                  `json:"is_multi_day"`
	FeaturedImageID   *int64                `json:"featured_image_id,omitempty"`
	RouteA            *RoutePayload         `json:"route_a,omitempty"`
	RouteB            *RoutePayload         `json:"route_b,omitempty"`
	Gallery           []GalleryItemPayload  `json:"gallery"`
	GpxFileIDs        []int64               `json:"gpx_file_ids"`
	AmenityIDs        []int64               `json:"amenity_ids"`
	Itinerary         []ItineraryDayPayload `json:"itinerary"`
}

type TrailStatusPayload struct {
	Status TrailStatus `json:"status"`
}
